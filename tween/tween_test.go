package tween

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	assert.Equal(t, 5.0, Float(0.0, 10.0, 0.5))
	assert.Equal(t, 2.0, Float(1.5, 2.5, 0.5))
	assert.Equal(t, float32(7.5), Float(float32(5), float32(10), 0.5))

	t.Run("extrapolates", func(t *testing.T) {
		assert.Equal(t, 15.0, Float(0.0, 10.0, 1.5))
		assert.Equal(t, -5.0, Float(0.0, 10.0, -0.5))
	})

	t.Run("saturates", func(t *testing.T) {
		got := Float(float32(0), float32(math.MaxFloat32), 4)
		assert.Equal(t, float32(math.MaxFloat32), got)
	})
}

func TestInt(t *testing.T) {
	assert.Equal(t, 5, Int(0, 10, 0.5))
	assert.Equal(t, uint8(255), Int(uint8(0), uint8(200), 2))
	assert.Equal(t, int8(-128), Int(int8(0), int8(-100), 3))
}

func TestVectors(t *testing.T) {
	blend := Of[Vec3]()
	got := blend(Vec3{0, 0, 0}, Vec3{2, 4, 8}, 0.25)
	assert.Equal(t, Vec3{0.5, 1, 2}, got)

	assert.Equal(t, Vec2{1, 1}, Vec2{0, 2}.Tween(Vec2{2, 0}, 0.5))
	assert.Equal(t, Vec4{1, 2, 3, 4}, Vec4{}.Tween(Vec4{2, 4, 6, 8}, 0.5))
	assert.Equal(t, Point2{5, 5}, Point2{}.Tween(Point2{10, 10}, 0.5))
	assert.Equal(t, Point3{1, 1, 1}, Point3{}.Tween(Point3{4, 4, 4}, 0.25))
}

func TestSlice(t *testing.T) {
	blend := Slice(Float[float64])
	assert.Equal(t, []float64{1, 2, 3}, blend([]float64{0, 0, 0}, []float64{2, 4, 6}, 0.5))

	t.Run("length mismatch panics", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, ErrLengthMismatch))
		}()

		blend([]float64{0, 0}, []float64{1}, 0.5)
	})
}

func TestColor(t *testing.T) {
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}
	assert.Equal(t, colorful.Color{R: 0.5, G: 0.5, B: 0.5}, Color(black, white, 0.5))

	red := colorful.Color{R: 1}
	assert.True(t, ColorHcl(red, white, 0).AlmostEqualRgb(red))
	assert.True(t, ColorHcl(red, white, 1).AlmostEqualRgb(white))
}

type inner struct {
	A float32
}

type outer struct {
	A float64
	B Point2
	C float32
	D []inner
	E [2]int16
	F uint8
}

type pair struct {
	First  outer
	Second float64
}

func TestDerive(t *testing.T) {
	blend := Derive[outer]()

	from := outer{A: 0, B: Point2{0, 0}, C: 1, D: []inner{{0}, {10}}, E: [2]int16{0, 100}, F: 10}
	to := outer{A: 2, B: Point2{4, 8}, C: 3, D: []inner{{10}, {20}}, E: [2]int16{10, 0}, F: 20}

	got := blend(from, to, 0.5)
	assert.Equal(t, 1.0, got.A)
	assert.Equal(t, Point2{2, 4}, got.B)
	assert.Equal(t, float32(2), got.C)
	assert.Equal(t, []inner{{5}, {15}}, got.D)
	assert.Equal(t, [2]int16{5, 50}, got.E)
	assert.Equal(t, uint8(15), got.F)

	t.Run("inputs untouched", func(t *testing.T) {
		assert.Equal(t, []inner{{0}, {10}}, from.D)
	})

	t.Run("nested", func(t *testing.T) {
		got := Derive[pair]()(pair{First: from, Second: 1}, pair{First: to, Second: 3}, 0.5)
		assert.Equal(t, 2.0, got.Second)
		assert.Equal(t, 1.0, got.First.A)
	})

	t.Run("slice length mismatch panics", func(t *testing.T) {
		assert.Panics(t, func() {
			blend(outer{D: []inner{{1}}}, outer{}, 0.5)
		})
	})

	t.Run("untweenable panics", func(t *testing.T) {
		type named struct {
			Name string
		}

		assert.Panics(t, func() { Derive[named]() })
		assert.Panics(t, func() { Derive[*float64]() })
	})

	t.Run("colour", func(t *testing.T) {
		got := Derive[colorful.Color]()(colorful.Color{}, colorful.Color{R: 1, G: 1, B: 1}, 0.5)
		assert.Equal(t, colorful.Color{R: 0.5, G: 0.5, B: 0.5}, got)
	})
}

type node struct {
	V        float64
	Children []node
}

func TestDeriveRecursive(t *testing.T) {
	blend := Derive[node]()

	from := node{V: 0, Children: []node{{V: 0}}}
	to := node{V: 4, Children: []node{{V: 8}}}

	got := blend(from, to, 0.5)
	assert.Equal(t, 2.0, got.V)
	require.Len(t, got.Children, 1)
	assert.Equal(t, 4.0, got.Children[0].V)
	assert.Nil(t, got.Children[0].Children)
}
