package stream

import (
	"container/list"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/keyframe"
	"github.com/matt-g-everett/keyframe/tween"
)

// Pixels per second a streak moves at speed 1.
const streakPixelsPerSec = 6.0

type streakParticle struct {
	current  float64
	length   float64
	velocity float64
	gain     *keyframe.Sequence[float64]
}

// newStreakParticle creates a particle that fades in, then out, over life seconds.
func newStreakParticle(start, velocity, life float64) *streakParticle {
	p := new(streakParticle)
	p.current = start
	p.length = 10
	p.velocity = velocity
	p.gain = keyframe.NewSequence(tween.Float[float64],
		keyframe.New(0.0, 0, easing.InOutQuad),
		keyframe.New(1.0, life/2, easing.InOutQuad),
		keyframe.New(0.0, life, nil),
	)

	return p
}

func (p *streakParticle) incrementPosition(delta, numPixels float64) bool {
	p.current += p.velocity * delta
	p.gain.AdvanceBy(delta)

	if p.current > numPixels || p.current < 0-p.length {
		return false
	}

	return !p.gain.Finished()
}

func (p *streakParticle) addStreak(frame *Frame, colour colorful.Color) {
	bias := p.gain.Now()

	start := int(math.Max(math.Ceil(p.current), 0))
	end := int(math.Min(math.Floor(p.current+p.length), float64(len(frame.pixels)-1)))
	for i := start; i <= end; i++ {
		frame.pixels[i] = frame.pixels[i].BlendHcl(colour, bias)
	}
}

// A Streak is an Animation that creates streaks across the tree that fade in then out.
type Streak struct {
	colour       colorful.Color
	backColour   colorful.Color
	speed        float64
	streakChance int32
	particles    *list.List
	lastMs       int64
}

// NewStreak creates an instance of a Streak object.
func NewStreak(streakChance int32, colour, backColour colorful.Color, speed float64, runtimeMs int64) *Streak {
	s := new(Streak)
	s.streakChance = streakChance
	s.colour = colour
	s.backColour = backColour
	s.speed = speed
	s.lastMs = runtimeMs
	s.particles = list.New()

	return s
}

// CalculateFrame creates a new Frame instance.
func (s *Streak) CalculateFrame(runtimeMs int64) *Frame {
	delta := float64(runtimeMs-s.lastMs) / 1000
	s.lastMs = runtimeMs

	f := NewFrame()
	f.Fill(s.backColour)
	n := float64(len(f.pixels))

	for e := s.particles.Front(); e != nil; {
		next := e.Next()

		particle, _ := e.Value.(*streakParticle)
		if particle.incrementPosition(delta, n) {
			particle.addStreak(f, s.colour)
		} else {
			s.particles.Remove(e)
		}

		e = next
	}

	if rand.Int31n(s.streakChance) == 0 {
		// Create a randomised new particle
		velocity := s.speed * streakPixelsPerSec * (0.5 + rand.Float64())
		if rand.Intn(2) == 0 {
			velocity = -velocity
		}
		s.particles.PushBack(newStreakParticle(rand.Float64()*n, velocity, 2+rand.Float64()*4))
	}

	return f
}

// Len returns the number of live streaks.
func (s *Streak) Len() int {
	return s.particles.Len()
}
