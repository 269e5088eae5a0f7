package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/keyframe"
	"github.com/matt-g-everett/keyframe/tween"
)

type twinkleParticle struct {
	colour   colorful.Color
	sequence *keyframe.Sequence[colorful.Color]
	falling  bool
}

// scintillate starts the particle rising towards fore over rise seconds.
func (p *twinkleParticle) scintillate(fore colorful.Color, rise float64, curve easing.Function) {
	p.sequence = keyframe.NewSequence(tween.ColorHcl,
		keyframe.New(p.colour, 0, curve),
		keyframe.New(fore, rise, curve),
	)
	p.falling = false
}

func (p *twinkleParticle) running() bool {
	return p.sequence != nil
}

// increment moves the particle along. At the peak it turns round and falls towards next,
// and it comes to rest once the fall is over.
func (p *twinkleParticle) increment(delta float64, next colorful.Color) {
	if !p.running() {
		return
	}

	if p.falling {
		if p.sequence.AdvanceBy(delta) > 0 || p.sequence.Finished() {
			p.sequence = nil
		}

		return
	}

	// at most one turn per step
	if d := p.sequence.Duration(); delta > d {
		delta = d
	}

	if !p.sequence.AdvanceAndMaybeReverse(delta) {
		return
	}

	p.falling = true
	p.colour = next

	peak := p.sequence.Keyframes()[0]
	pos := p.sequence.Time()
	p.sequence = keyframe.NewSequence(tween.ColorHcl,
		peak,
		keyframe.New(next, p.sequence.Duration(), peak.Curve()),
	)
	p.sequence.AdvanceTo(pos)
	if p.sequence.Finished() {
		p.sequence = nil
	}
}

func (p *twinkleParticle) currentColour() colorful.Color {
	if !p.running() {
		return p.colour
	}

	return p.sequence.Now()
}

// A Twinkle is an Animation that twinkles random particles.
type Twinkle struct {
	foreColour          colorful.Color
	backColours         []colorful.Color
	curve               easing.Function
	scintillationChance int32
	particles           []*twinkleParticle
	lastMs              int64
}

// NewTwinkle creates an instance of a Twinkle object. Every pixel rests on one of the
// back colours and now and then rises to the fore colour and falls back, possibly to a
// different back colour.
func NewTwinkle(scintillationChance int32, foreColour colorful.Color, backColours []colorful.Color,
	curve easing.Function, runtimeMs int64) *Twinkle {

	t := new(Twinkle)
	t.foreColour = foreColour
	t.backColours = backColours
	t.curve = curve
	t.scintillationChance = scintillationChance
	t.lastMs = runtimeMs

	t.particles = make([]*twinkleParticle, numPixels)
	for i := range t.particles {
		t.particles[i] = &twinkleParticle{colour: t.getRandomBackColour()}
	}

	return t
}

func (t *Twinkle) getRandomBackColour() colorful.Color {
	return t.backColours[rand.Intn(len(t.backColours))]
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame(runtimeMs int64) *Frame {
	delta := float64(runtimeMs-t.lastMs) / 1000
	t.lastMs = runtimeMs

	f := NewFrame()
	for i, p := range t.particles {
		if p.running() {
			p.increment(delta, t.getRandomBackColour())
		} else if rand.Int31n(t.scintillationChance) == 0 {
			p.scintillate(t.foreColour, 0.2+rand.Float64()*0.6, t.curve)
		}

		f.pixels[i] = p.currentColour()
	}

	return f
}
