package easing

import (
	"errors"
	"math"
	"testing"

	"github.com/matt-g-everett/keyframe/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCurves(t *testing.T) {
	curves := map[string]Function{
		"linear":       Linear,
		"in-quad":      InQuad,
		"out-quad":     OutQuad,
		"in-out-quad":  InOutQuad,
		"in-cubic":     InCubic,
		"out-cubic":    OutCubic,
		"in-out-cubic": InOutCubic,
		"in-quart":     InQuart,
		"out-quart":    OutQuart,
		"in-out-quart": InOutQuart,
		"in-quint":     InQuint,
		"out-quint":    OutQuint,
		"in-out-quint": InOutQuint,
		"in-sine":      InSine,
		"out-sine":     OutSine,
		"in-out-sine":  InOutSine,
	}

	for name, f := range curves {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, f.Y(0), 1e-9)
			assert.InDelta(t, 1, f.Y(1), 1e-9)
		})
	}

	assert.InDelta(t, 0.25, InQuad.Y(0.5), 1e-9)
	assert.InDelta(t, 0.75, OutQuad.Y(0.5), 1e-9)
	assert.InDelta(t, 0.125, InCubic.Y(0.5), 1e-9)
	assert.InDelta(t, 0.5, InOutCubic.Y(0.5), 1e-9)
	assert.InDelta(t, 4*0.25*0.25*0.25, InOutCubic.Y(0.25), 1e-9)
	assert.InDelta(t, 0.0625, InQuart.Y(0.5), 1e-9)
	assert.InDelta(t, 0.03125, InQuint.Y(0.5), 1e-9)
}

func TestStepAndHold(t *testing.T) {
	assert.Equal(t, 0.0, Step.Y(0.49))
	assert.Equal(t, 1.0, Step.Y(0.5))
	assert.Equal(t, 0.0, Hold.Y(0.99))
	assert.Equal(t, 0.0, Hold.Y(1))
}

func TestEase(t *testing.T) {
	blend := tween.Float[float64]

	assert.Equal(t, 1.0, Ease(Linear, blend, 0.0, 2.0, 0.5))
	assert.Equal(t, 2.0, Ease(Linear, blend, 0.0, 2.0, 3))
	assert.Equal(t, 0.0, Ease(Linear, blend, 0.0, 2.0, -3))
	assert.Equal(t, 6.0, EaseUnbounded(Linear, blend, 0.0, 2.0, 3))

	assert.Equal(t, 1.0, EaseScaled(Linear, blend, 0.0, 2.0, 5, 10))
	assert.Equal(t, 2.0, EaseScaled(Linear, blend, 0.0, 2.0, 15, 10))
	assert.Equal(t, 0.0, EaseScaled(Linear, blend, 0.0, 2.0, -1, 10))

	assert.InDelta(t, 0.25, EaseIn(blend, 0.0, 2.0, 0.5), 1e-9)
	assert.InDelta(t, 1.75, EaseOut(blend, 0.0, 2.0, 0.5), 1e-9)
	assert.InDelta(t, 1.0, EaseInOut(blend, 0.0, 2.0, 0.5), 1e-9)
}

func TestScale(t *testing.T) {
	assert.Equal(t, 0.5, Scale(1, 2))
	assert.Equal(t, 0.0, Scale(-1, 2))
	assert.Equal(t, 1.0, Scale(3, 2))
	assert.Equal(t, 1.0, Scale(0, 0))
}

func TestBezier(t *testing.T) {
	t.Run("endpoints", func(t *testing.T) {
		b := NewBezier(0.6, 0.04, 0.98, 0.335)
		assert.Equal(t, 0.0, b.Y(0))
		assert.Equal(t, 1.0, b.Y(1))
	})

	t.Run("linear control points", func(t *testing.T) {
		b := NewBezier(0.25, 0.25, 0.75, 0.75)
		for x := 0.05; x < 1; x += 0.05 {
			assert.InDelta(t, x, b.Y(x), 1e-9)
		}
	})

	t.Run("clamps control points", func(t *testing.T) {
		x1, y1, x2, y2 := NewBezier(-1, 2, 0.5, -0.5).ControlPoints()
		assert.Equal(t, [4]float64{0, 1, 0.5, 0}, [4]float64{x1, y1, x2, y2})
	})

	t.Run("solves x", func(t *testing.T) {
		b := NewBezier(0.42, 0, 0.58, 1)
		for x := 0.02; x < 1; x += 0.02 {
			tt := b.tForX(x)
			assert.InDelta(t, x, bezierAt(tt, b.x1, b.x2), 1e-4)
		}
	})

	t.Run("symmetric curve", func(t *testing.T) {
		b := NewBezier(0.42, 0, 0.58, 1)
		assert.InDelta(t, 0.5, b.Y(0.5), 1e-4)
		assert.InDelta(t, 1-b.Y(0.2), b.Y(0.8), 1e-4)
	})

	t.Run("monotonic", func(t *testing.T) {
		b := NewBezier(0.6, 0.04, 0.98, 0.335)
		prev := 0.0
		for x := 0.01; x < 1; x += 0.01 {
			y := b.Y(x)
			assert.GreaterOrEqual(t, y, prev-1e-6)
			prev = y
		}
	})

	t.Run("flat start uses subdivision", func(t *testing.T) {
		b := NewBezier(0, 0.5, 1, 0.5)
		assert.InDelta(t, 0.5, b.Y(0.5), 1e-4)

		x := 0.000001
		assert.Less(t, bezierSlope(x, b.x1, b.x2), newtonMinSlope)
		assert.InDelta(t, x, bezierAt(b.tForX(x), b.x1, b.x2), 1e-6)
	})

	assert.Equal(t, "cubic-bezier(0.25, 0.1, 0.25, 1)", NewBezier(0.25, 0.1, 0.25, 1).String())
}

func TestResampled(t *testing.T) {
	var samples [SampleTableSize]float64
	for i := range samples {
		samples[i] = -2 * float64(i) / (SampleTableSize - 1)
	}

	r := NewResampled(samples)
	assert.InDelta(t, 0, r.Y(0), 1e-9)
	assert.InDelta(t, 1, r.Y(1), 1e-9)
	assert.InDelta(t, 0.5, r.Y(0.5), 1e-9)

	t.Run("extrapolates", func(t *testing.T) {
		assert.InDelta(t, 1.5, r.Y(1.5), 1e-9)
		assert.InDelta(t, -0.25, r.Y(-0.25), 1e-9)
	})

	t.Run("flat samples are kept", func(t *testing.T) {
		var flat [SampleTableSize]float64
		for i := range flat {
			flat[i] = 0.5
		}

		r := NewResampled(flat)
		assert.Equal(t, 0.5, r.Y(0.3))
	})

	assert.True(t, math.IsNaN(r.Y(math.NaN())))
}

func TestCatalog(t *testing.T) {
	c := NewCatalog()

	f, ok := c.Lookup("In-Out-Quad")
	require.True(t, ok)
	assert.InDelta(t, InOutQuad.Y(0.3), f.Y(0.3), 1e-12)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)

	t.Run("empty is default", func(t *testing.T) {
		f, err := c.Parse("  ")
		require.NoError(t, err)
		assert.InDelta(t, Default.Y(0.3), f.Y(0.3), 1e-12)
	})

	t.Run("bezier is shared", func(t *testing.T) {
		a, err := c.Parse("cubic-bezier(0.6, 0.04, 0.98, 0.335)")
		require.NoError(t, err)

		b, err := c.Parse("cubic-bezier(0.6,0.04,0.98,0.335)")
		require.NoError(t, err)

		assert.Same(t, a, b)
		assert.Contains(t, c.Names(), "cubic-bezier(0.6,0.04,0.98,0.335)")
	})

	t.Run("errors", func(t *testing.T) {
		_, err := c.Parse("wobble")
		assert.True(t, errors.Is(err, ErrUnknownCurve))

		_, err = c.Parse("cubic-bezier(1, 2, 3)")
		assert.True(t, errors.Is(err, ErrBadCurve))

		_, err = c.Parse("cubic-bezier(a, 2, 3, 4)")
		assert.True(t, errors.Is(err, ErrBadCurve))

		_, err = c.Parse("cubic-bezier(1, 2, 3, 4")
		assert.True(t, errors.Is(err, ErrBadCurve))
	})

	t.Run("register", func(t *testing.T) {
		c.Register("Snap", Step)
		f, ok := c.Lookup("snap")
		require.True(t, ok)
		assert.Equal(t, 1.0, f.Y(0.7))
	})
}
