package stream

import (
	"fmt"

	"github.com/matt-g-everett/keyframe/easing"
)

// An Animation implements a way to render a specific animation.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}

// NewAnimation builds the animation described by cfg, starting at runtimeMs.
func NewAnimation(cfg AnimationConfig, catalog *easing.Catalog, runtimeMs int64) (Animation, error) {
	switch cfg.Type {
	case TypeKeyframes:
		return NewKeyframeAnimation(cfg, catalog, runtimeMs)
	case TypeGradient:
		gradient, err := NewGradientTable(cfg.Gradient)
		if err != nil {
			return nil, err
		}

		return NewGradientTrail(gradient, cfg.TrailLength, cfg.Speed, runtimeMs), nil
	case TypeTwinkle:
		fore, back, err := cfg.colours()
		if err != nil {
			return nil, err
		}

		curve, err := catalog.Parse(cfg.Curve)
		if err != nil {
			return nil, err
		}

		return NewTwinkle(int32(cfg.Chance), fore, back, curve, runtimeMs), nil
	case TypeStreak:
		fore, back, err := cfg.colours()
		if err != nil {
			return nil, err
		}

		return NewStreak(int32(cfg.Chance), fore, back[0], cfg.Speed, runtimeMs), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnimation, cfg.Type)
	}
}

// Playlist hands out the configured animations in turn.
type Playlist struct {
	configs []AnimationConfig
	catalog *easing.Catalog
	index   int
}

// NewPlaylist checks that every animation in configs can be built.
func NewPlaylist(configs []AnimationConfig, catalog *easing.Catalog) (*Playlist, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("%w: no animations", ErrInvalidConfig)
	}

	for _, cfg := range configs {
		if _, err := NewAnimation(cfg, catalog, 0); err != nil {
			return nil, fmt.Errorf("animation %s: %w", cfg.Name, err)
		}
	}

	p := new(Playlist)
	p.configs = configs
	p.catalog = catalog

	return p, nil
}

// Len returns the number of animations.
func (p *Playlist) Len() int {
	return len(p.configs)
}

// Next builds the next animation, starting at runtimeMs, and returns its name.
func (p *Playlist) Next(runtimeMs int64) (string, Animation) {
	cfg := p.configs[p.index]
	p.index++
	if p.index >= len(p.configs) {
		p.index = 0
	}

	// every config was built once in NewPlaylist
	a, _ := NewAnimation(cfg, p.catalog, runtimeMs)

	return cfg.Name, a
}
