package keyframe

import (
	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/internal/num"
)

// ToEasing samples a scalar sequence into a curve. The sequence is sampled at
// easing.SampleTableSize evenly spaced points over its duration, and the samples are
// normalized so the curve starts at 0 and ends at 1.
//
// The sequence itself is left untouched.
func ToEasing[F num.Float](s *Sequence[F]) *easing.Resampled {
	scratch := s.Clone()
	d := scratch.Duration()

	var samples [easing.SampleTableSize]float64
	for i := range samples {
		scratch.AdvanceTo(float64(i) / (easing.SampleTableSize - 1) * d)
		samples[i] = num.ToF64(scratch.Now())
	}

	return easing.NewResampled(samples)
}
