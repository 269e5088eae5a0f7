package stream

import (
	"context"
	"sync"
	"time"

	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/keyframe"
	"github.com/matt-g-everett/keyframe/tween"
	"github.com/sgostarter/i/l"
)

// Controller that manages animations. It plays one animation at a time and fades into the
// next one from its playlist.
type Controller struct {
	mu sync.Mutex

	playlist      *Playlist
	animation     Animation
	nextAnimation Animation
	transition    *keyframe.Sequence[float64]
	runtimeMs     int64

	logger l.Wrapper
}

// NewController creates an instance of a Controller.
func NewController(playlist *Playlist, transitionTimeSecs float64, runtimeMs int64, logger l.Wrapper) *Controller {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	c := new(Controller)
	c.logger = logger.WithFields(l.StringField(l.ClsKey, "Controller"))
	c.playlist = playlist
	c.runtimeMs = runtimeMs
	c.transition = newTransition(transitionTimeSecs)

	name, a := playlist.Next(runtimeMs)
	c.animation = a
	c.logger.WithFields(l.StringField("animation", name)).Debug("start")

	return c
}

// newTransition returns the mix of the next animation over time, from 0 to 1.
func newTransition(secs float64) *keyframe.Sequence[float64] {
	if secs <= 0 {
		return keyframe.NewSequence(tween.Float[float64], keyframe.New(1.0, 0, nil))
	}

	return keyframe.NewSequence(tween.Float[float64],
		keyframe.New(0.0, 0, easing.InOutCubic),
		keyframe.New(1.0, secs, nil),
	)
}

// CalculateFrame renders the current animation, mixed with the next one while a
// transition is running.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	delta := float64(runtimeMs-c.runtimeMs) / 1000
	c.runtimeMs = runtimeMs

	if c.nextAnimation == nil {
		return c.animation.CalculateFrame(runtimeMs)
	}

	c.transition.AdvanceBy(delta)

	f1 := c.animation.CalculateFrame(runtimeMs)
	f2 := c.nextAnimation.CalculateFrame(runtimeMs)
	f := f1.InterpolateFrame(f2, c.transition.Now())

	if c.transition.Finished() {
		c.animation = c.nextAnimation
		c.nextAnimation = nil
	}

	return f
}

// Transitioning reports whether a fade is running.
func (c *Controller) Transitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.nextAnimation != nil
}

// Cycle starts fading into the next animation of the playlist.
func (c *Controller) Cycle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cycleAnimation()
}

// SetPlaylist replaces the playlist and fades into its first animation.
func (c *Controller) SetPlaylist(playlist *Playlist, transitionTimeSecs float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.playlist = playlist
	c.transition = newTransition(transitionTimeSecs)
	c.cycleAnimation()
}

func (c *Controller) cycleAnimation() {
	name, a := c.playlist.Next(c.runtimeMs)
	c.nextAnimation = a
	c.transition.AdvanceTo(0)

	c.logger.WithFields(l.StringField("animation", name)).Debug("cycle")
}

// Run causes the Controller to cycle through animations until ctx is done.
func (c *Controller) Run(ctx context.Context, animationTime time.Duration) {
	cycleTimer := time.NewTicker(animationTime)
	defer cycleTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-cycleTimer.C:
			c.Cycle()
		}
	}
}
