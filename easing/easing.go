// Package easing maps linear progress to eased progress.
//
// A Function is a curve through (0, 0) and (1, 1). Curves are immutable once built, so a
// single instance can be shared by any number of keyframes.
package easing

import (
	"github.com/matt-g-everett/keyframe/internal/num"
	"github.com/matt-g-everett/keyframe/tween"
)

// Function is a 2D curve used to ease between two values.
type Function interface {
	// Y returns the eased progress for linear progress x. 0 and 1 are the start and the
	// end on both axes, but x and the result may go beyond them.
	Y(x float64) float64
}

// Func adapts a plain curve function, such as those in github.com/fogleman/ease, into
// a Function.
type Func func(x float64) float64

// Y calls f(x).
func (f Func) Y(x float64) float64 {
	return f(x)
}

// Scale maps t in [0, end] onto [0, 1], clamping outside that range. A non-positive end
// is treated as already finished.
func Scale(t, end float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > end || end <= 0:
		return 1
	default:
		return t / end
	}
}

// EaseUnbounded blends from towards to at the point of f for t, without bounding t.
func EaseUnbounded[V any](f Function, blend tween.Func[V], from, to V, t float64) V {
	return blend(from, to, f.Y(t))
}

// Ease blends from towards to at the point of f for t, with t limited to [0, 1].
func Ease[V any](f Function, blend tween.Func[V], from, to V, t float64) V {
	return EaseUnbounded(f, blend, from, to, num.Clamp01(t))
}

// EaseScaled blends from towards to at the point of f for t, with t limited to [0, end].
func EaseScaled[V any](f Function, blend tween.Func[V], from, to V, t, end float64) V {
	return EaseUnbounded(f, blend, from, to, Scale(t, end))
}

// EaseIn eases with an accelerating cubic curve.
func EaseIn[V any](blend tween.Func[V], from, to V, t float64) V {
	return Ease(InCubic, blend, from, to, t)
}

// EaseOut eases with a decelerating cubic curve.
func EaseOut[V any](blend tween.Func[V], from, to V, t float64) V {
	return Ease(OutCubic, blend, from, to, t)
}

// EaseInOut eases with an accelerating then decelerating cubic curve.
func EaseInOut[V any](blend tween.Func[V], from, to V, t float64) V {
	return Ease(InOutCubic, blend, from, to, t)
}
