package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/keyframe"
	"github.com/matt-g-everett/keyframe/tween"
)

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable struct {
	hues *keyframe.Sequence[float64]
}

// NewGradientTable creates a table from hue stops. Two stops at the same position are an
// error.
func NewGradientTable(stops []GradientStop) (*GradientTable, error) {
	hues := keyframe.Empty(tween.Float[float64])
	for _, stop := range stops {
		if err := hues.Insert(keyframe.New(stop.Hue, stop.Pos, easing.Linear)); err != nil {
			return nil, fmt.Errorf("%w: gradient: %v", ErrInvalidConfig, err)
		}
	}

	g := new(GradientTable)
	g.hues = hues

	return g, nil
}

// Hue returns the hue at position t. Outside the stops the nearest stop's hue is used.
func (g *GradientTable) Hue(t float64) float64 {
	g.hues.AdvanceTo(t)
	h, _ := g.hues.NowStrict()

	return h
}

// GetColor gets a colour at the specified point on the look-up table.
func (g *GradientTable) GetColor(t, s, l float64) colorful.Color {
	return colorful.Hcl(g.Hue(t), s, l)
}
