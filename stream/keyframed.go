package stream

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/keyframe"
	"github.com/matt-g-everett/keyframe/tween"
)

// A KeyframeAnimation is an Animation that plays a colour sequence over the whole strip.
// With a spread each pixel lags the previous one, so the sequence runs along the strip.
type KeyframeAnimation struct {
	sequence *keyframe.Sequence[colorful.Color]
	mode     string
	speed    float64
	spread   float64
	lastMs   int64
}

// NewKeyframeAnimation creates an instance of a KeyframeAnimation object.
func NewKeyframeAnimation(cfg AnimationConfig, catalog *easing.Catalog, runtimeMs int64) (*KeyframeAnimation, error) {
	s := keyframe.Empty(tween.ColorHcl)
	for _, kc := range cfg.Keyframes {
		value, err := kc.Value()
		if err != nil {
			return nil, err
		}

		curve, err := catalog.Parse(kc.Curve)
		if err != nil {
			return nil, err
		}

		if err := s.Insert(keyframe.New(value, kc.Time, curve)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	k := new(KeyframeAnimation)
	k.sequence = s
	k.mode = cfg.Mode
	k.speed = cfg.Speed
	k.spread = cfg.Spread
	k.lastMs = runtimeMs

	return k, nil
}

// CalculateFrame creates a new Frame instance.
func (k *KeyframeAnimation) CalculateFrame(runtimeMs int64) *Frame {
	delta := float64(runtimeMs-k.lastMs) / 1000 * k.speed
	k.lastMs = runtimeMs

	switch k.mode {
	case ModeWrap:
		k.sequence.AdvanceAndMaybeWrap(delta)
	case ModeReverse:
		k.sequence.AdvanceAndMaybeReverse(delta)
	default:
		k.sequence.AdvanceBy(delta)
	}

	f := NewFrame()
	if k.spread == 0 {
		f.Fill(k.sequence.Now())

		return f
	}

	scratch := k.sequence.Clone()
	now := k.sequence.Time()
	d := k.sequence.Duration()
	for i := range f.pixels {
		t := now - k.spread*float64(i)/float64(len(f.pixels))
		if k.mode == ModeWrap && d > 0 {
			t = math.Mod(t, d)
			if t < 0 {
				t += d
			}
		}

		scratch.AdvanceTo(t)
		f.pixels[i] = scratch.Now()
	}

	return f
}
