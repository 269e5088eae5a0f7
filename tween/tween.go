// Package tween blends two values of a type at a given progress fraction.
//
// Progress is not bounded here: a t outside [0, 1] extrapolates. Bounding t is the
// job of the easing and keyframe packages.
package tween

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframe/internal/num"
)

// ErrLengthMismatch is the panic value cause when two slices of different length are blended.
var ErrLengthMismatch = errors.New("tween: length mismatch")

// Func blends from towards to at progress t.
type Func[V any] func(from, to V, t float64) V

// Tweener is implemented by types that know how to blend themselves.
type Tweener[V any] interface {
	Tween(to V, t float64) V
}

// Of adapts a self-blending type into a Func.
func Of[V Tweener[V]]() Func[V] {
	return func(from, to V, t float64) V {
		return from.Tween(to, t)
	}
}

// Float blends two floating-point values in float64 and narrows the result back to F,
// saturating at the limits of F.
func Float[F num.Float](from, to F, t float64) F {
	a := num.ToF64(from)
	b := num.ToF64(to)

	return num.FromF64[F](a + (b-a)*t)
}

// Int blends two integers in float64, rounds, and saturates to the range of I.
func Int[I num.Integer](from, to I, t float64) I {
	a := num.ToF64(from)
	b := num.ToF64(to)

	return num.ToInt[I](a + (b-a)*t)
}

// Slice blends two slices element by element. Both slices must have the same length;
// anything else is a programming error and panics.
func Slice[V any](elem Func[V]) Func[[]V] {
	return func(from, to []V, t float64) []V {
		if len(from) != len(to) {
			panic(fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(from), len(to)))
		}

		out := make([]V, len(from))
		for i := range from {
			out[i] = elem(from[i], to[i], t)
		}

		return out
	}
}

// Color blends two colours in RGB space.
func Color(from, to colorful.Color, t float64) colorful.Color {
	return colorful.Color{
		R: Float(from.R, to.R, t),
		G: Float(from.G, to.G, t),
		B: Float(from.B, to.B, t),
	}
}

// ColorHcl blends two colours in HCL space, which keeps intermediate colours saturated.
func ColorHcl(from, to colorful.Color, t float64) colorful.Color {
	return from.BlendHcl(to, t)
}
