package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframe/tween"
)

const numPixels = 500

var blendPixels = tween.Slice(tween.ColorHcl)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a new black Frame.
func NewFrame() *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)

	return f
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Pixel returns the colour of pixel i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// InterpolateFrame blends two frames in HCL space.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := new(Frame)
	out.pixels = blendPixels(f.pixels, f2.pixels, transitionPoint)

	return out
}

// MarshalBinary converts a Frame into binary data: a little-endian pixel count followed
// by one RGB triple per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, len(f.pixels)*3+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
