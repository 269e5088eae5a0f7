package stream

import (
	"math"
)

// Pixels per second a gradient moves at speed 1.
const gradientPixelsPerSec = 60.0

// A GradientTrail is an Animation that cycles a gradient along an led strip.
type GradientTrail struct {
	gradient    *GradientTable
	current     float64
	trailLength float64
	speed       float64
	lastMs      int64
}

// NewGradientTrail creates an instance of a GradientTrail object. The gradient repeats
// every trailLength pixels.
func NewGradientTrail(gradient *GradientTable, trailLength, speed float64, runtimeMs int64) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.trailLength = trailLength
	g.speed = speed
	g.current = 0
	g.lastMs = runtimeMs

	return g
}

// CalculateFrame creates a new Frame instance.
func (g *GradientTrail) CalculateFrame(runtimeMs int64) *Frame {
	g.current += float64(runtimeMs-g.lastMs) / 1000 * g.speed * gradientPixelsPerSec
	g.current = math.Mod(g.current, g.trailLength)
	g.lastMs = runtimeMs

	f := NewFrame()
	saturation := 1.0
	luminance := 0.05
	n := len(f.pixels)
	for i := 0; i < n; i++ {
		t := math.Mod(float64(i+n)-g.current, g.trailLength) / g.trailLength
		f.pixels[i] = g.gradient.GetColor(t, saturation, luminance)
	}

	return f
}
