package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame()
	f.Fill(colorful.Color{R: 1, G: 0.5, B: 0})
	f.pixels[1] = colorful.Color{R: 2, G: -1, B: 0}

	data, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 2+numPixels*3)

	assert.Equal(t, uint16(numPixels), binary.LittleEndian.Uint16(data))
	assert.Equal(t, []byte{255, 128, 0}, data[2:5])
	assert.Equal(t, []byte{255, 0, 0}, data[5:8])
}

func TestFrameInterpolate(t *testing.T) {
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}

	a := NewFrame()
	a.Fill(red)
	b := NewFrame()
	b.Fill(blue)

	assert.True(t, red.AlmostEqualRgb(a.InterpolateFrame(b, 0).Pixel(0)))
	assert.True(t, blue.AlmostEqualRgb(a.InterpolateFrame(b, 1).Pixel(numPixels-1)))

	mid := a.InterpolateFrame(b, 0.5)
	assert.Equal(t, numPixels, mid.Len())
	assert.Equal(t, red.BlendHcl(blue, 0.5), mid.Pixel(10))
}
