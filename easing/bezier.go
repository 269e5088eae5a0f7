package easing

import (
	"fmt"
	"math"

	"github.com/matt-g-everett/keyframe/internal/num"
)

// SampleTableSize is the number of samples kept by the table-driven curves.
const SampleTableSize = 15

const (
	newtonIterations         = 4
	newtonMinSlope           = 0.001
	subdivisionPrecision     = 0.0000001
	subdivisionMaxIterations = 10

	sampleStep = 1.0 / (SampleTableSize - 1)
)

// Bezier is a cubic Bézier curve from (0, 0) to (1, 1) shaped by two control points,
// like the CSS cubic-bezier() timing function.
type Bezier struct {
	x1, y1, x2, y2 float64
	samples        [SampleTableSize]float64
}

// NewBezier builds a curve with control points (x1, y1) and (x2, y2). Each coordinate is
// clamped to [0, 1].
func NewBezier(x1, y1, x2, y2 float64) *Bezier {
	b := &Bezier{
		x1: num.Clamp01(x1),
		y1: num.Clamp01(y1),
		x2: num.Clamp01(x2),
		y2: num.Clamp01(y2),
	}

	for i := range b.samples {
		b.samples[i] = bezierAt(float64(i)*sampleStep, b.x1, b.x2)
	}

	return b
}

// ControlPoints returns the clamped control points.
func (b *Bezier) ControlPoints() (x1, y1, x2, y2 float64) {
	return b.x1, b.y1, b.x2, b.y2
}

func (b *Bezier) String() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", b.x1, b.y1, b.x2, b.y2)
}

// Y solves the curve for x, then evaluates its y coordinate.
func (b *Bezier) Y(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	case b.x1 == b.y1 && b.x2 == b.y2:
		return x
	default:
		return bezierAt(b.tForX(x), b.y1, b.y2)
	}
}

func (b *Bezier) tForX(x float64) float64 {
	intervalStart := 0.0
	current := 1
	last := SampleTableSize - 1

	for ; current != last && b.samples[current] <= x; current++ {
		intervalStart += sampleStep
	}
	current--

	dist := 0.0
	if span := b.samples[current+1] - b.samples[current]; span != 0 {
		dist = (x - b.samples[current]) / span
	}
	guess := intervalStart + dist*sampleStep

	if bezierSlope(guess, b.x1, b.x2) >= newtonMinSlope {
		return b.newtonRaphson(x, guess)
	}

	return b.binarySubdivide(x, intervalStart, intervalStart+sampleStep)
}

func (b *Bezier) newtonRaphson(x, guess float64) float64 {
	for i := 0; i < newtonIterations; i++ {
		slope := bezierSlope(guess, b.x1, b.x2)
		if slope == 0 {
			break
		}

		guess -= (bezierAt(guess, b.x1, b.x2) - x) / slope
	}

	return guess
}

func (b *Bezier) binarySubdivide(x, lo, hi float64) float64 {
	var t, current float64

	for i := 0; i < subdivisionMaxIterations; i++ {
		t = lo + (hi-lo)/2
		current = bezierAt(t, b.x1, b.x2) - x
		if current > 0 {
			hi = t
		} else {
			lo = t
		}

		if math.Abs(current) <= subdivisionPrecision {
			break
		}
	}

	return t
}

// bezierAt evaluates one axis of the curve with control coordinates c1 and c2 at t.
func bezierAt(t, c1, c2 float64) float64 {
	return ((bezierA(c1, c2)*t+bezierB(c1, c2))*t + bezierC(c1)) * t
}

func bezierSlope(t, c1, c2 float64) float64 {
	return 3*bezierA(c1, c2)*t*t + 2*bezierB(c1, c2)*t + bezierC(c1)
}

func bezierA(c1, c2 float64) float64 { return 1 - 3*c2 + 3*c1 }
func bezierB(c1, c2 float64) float64 { return 3*c2 - 6*c1 }
func bezierC(c1 float64) float64     { return 3 * c1 }
