// Package keyframe plays back values over time from a sorted list of keyframes.
//
// A Keyframe anchors a value at a time and carries the curve used when moving away from
// it towards the next keyframe. A Sequence owns a sorted set of keyframes together with a
// playback position, and answers what the value is at that position.
//
// Sequences are not safe for concurrent mutation. The curves they hold are immutable and
// may be shared freely.
package keyframe

import (
	"fmt"
	"math"

	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/tween"
)

// Keyframe is a value anchored at a time in seconds.
type Keyframe[V any] struct {
	value V
	time  float64
	curve easing.Function
}

// New creates a keyframe. A negative or NaN time starts the keyframe at 0, and a nil curve
// selects easing.Default.
func New[V any](value V, time float64, curve easing.Function) Keyframe[V] {
	if time < 0 || math.IsNaN(time) {
		time = 0
	}

	if curve == nil {
		curve = easing.Default
	}

	return Keyframe[V]{
		value: value,
		time:  time,
		curve: curve,
	}
}

// Value returns the value of this keyframe.
func (k Keyframe[V]) Value() V {
	return k.value
}

// Time returns the time in seconds at which this keyframe starts in a sequence.
func (k Keyframe[V]) Time() float64 {
	return k.time
}

// Curve returns the curve used when tweening from this keyframe to the next one.
func (k Keyframe[V]) Curve() easing.Function {
	if k.curve == nil {
		return easing.Default
	}

	return k.curve
}

// TweenTo returns the value between k and next at time.
//
// Before k the value of k is returned, and after next the value of next. If next starts
// before k the value of next is returned. Otherwise the time is normalized over the
// span between the two keyframes and shaped by the curve of k.
func (k Keyframe[V]) TweenTo(next Keyframe[V], time float64, blend tween.Func[V]) V {
	switch {
	case time < k.time:
		return k.value
	case time > next.time:
		return next.value
	case next.time < k.time:
		return next.value
	}

	progress := easing.EaseScaled(easing.Linear, tween.Float[float64], 0, 1, time-k.time, next.time-k.time)

	return blend(k.value, next.value, k.Curve().Y(progress))
}

func (k Keyframe[V]) String() string {
	return fmt.Sprintf("Keyframe at %.2f s: %v", k.time, k.value)
}
