package easing

import (
	"math"
)

// Resampled is a curve stored as a table of evenly spaced samples, typically taken from
// an animation sequence. Sample i sits at x = i / (SampleTableSize - 1).
type Resampled struct {
	samples [SampleTableSize]float64
}

// NewResampled normalizes samples so the first one maps to 0 and the last one to 1. When
// the first and last samples are equal the samples are kept as they are.
func NewResampled(samples [SampleTableSize]float64) *Resampled {
	low := samples[0]
	high := samples[SampleTableSize-1]
	if high == low {
		low, high = 0, 1
	}

	r := &Resampled{}
	for i, s := range samples {
		r.samples[i] = (s - low) / (high - low)
	}

	return r
}

// Samples returns the normalized sample table.
func (r *Resampled) Samples() [SampleTableSize]float64 {
	return r.samples
}

// Y interpolates between the two samples around x. Outside [0, 1] the first or last
// segment is extended.
func (r *Resampled) Y(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}

	pos := x * (SampleTableSize - 1)
	i := 0
	switch {
	case pos >= SampleTableSize-2:
		i = SampleTableSize - 2
	case pos > 0:
		i = int(math.Floor(pos))
	}

	frac := pos - float64(i)

	return r.samples[i] + (r.samples[i+1]-r.samples[i])*frac
}
