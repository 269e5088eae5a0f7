package keyframe

import (
	"cmp"
	"iter"
	"math"
	"slices"
	"sort"

	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/tween"
)

// Sequence is a collection of keyframes that can be played back in order.
//
// Keyframes are kept sorted by time and no two keyframes share a time. The playback time
// always lies within [0, Duration()].
type Sequence[V any] struct {
	blend   tween.Func[V]
	entries []Keyframe[V]

	// index of the last keyframe at or before time, -1 when there is none
	cursor int
	time   float64
}

// Empty creates a sequence without keyframes.
func Empty[V any](blend tween.Func[V]) *Sequence[V] {
	return &Sequence[V]{
		blend:  blend,
		cursor: -1,
	}
}

// NewSequence creates a sequence from keyframes in any order. When several keyframes share
// a time only the first of them is kept.
func NewSequence[V any](blend tween.Func[V], keyframes ...Keyframe[V]) *Sequence[V] {
	s := Empty(blend)
	s.entries = append(make([]Keyframe[V], 0, len(keyframes)), keyframes...)
	s.sort()
	s.entries = slices.CompactFunc(s.entries, sameTime[V])
	s.updateCursor()

	return s
}

// Collect creates a sequence from an iterator. Keyframes whose time is already taken by
// an earlier keyframe are discarded.
func Collect[V any](blend tween.Func[V], keyframes iter.Seq[Keyframe[V]]) *Sequence[V] {
	s := Empty(blend)
	taken := s.taken()

	for k := range keyframes {
		if _, ok := taken[k.time]; ok {
			continue
		}
		taken[k.time] = struct{}{}
		s.entries = append(s.entries, k)
	}

	s.sort()
	s.updateCursor()

	return s
}

// Insert adds a keyframe. It fails with a *TimeCollisionError when another keyframe already
// starts at the same time, leaving the sequence untouched.
func (s *Sequence[V]) Insert(k Keyframe[V]) error {
	if s.HasKeyframeAt(k.time) {
		return &TimeCollisionError{Time: k.time}
	}

	n := len(s.entries)
	switch {
	case n == 0 || k.time > s.entries[n-1].time:
		s.entries = append(s.entries, k)
	case k.time < s.entries[0].time:
		s.entries = slices.Insert(s.entries, 0, k)
	default:
		i := sort.Search(n, func(i int) bool { return s.entries[i].time > k.time })
		s.entries = slices.Insert(s.entries, i, k)
	}

	s.updateCursor()

	return nil
}

// InsertMany adds several keyframes and sorts once at the end. It stops at the first
// keyframe whose time is taken and returns a *TimeCollisionError; the keyframes before it
// stay inserted.
func (s *Sequence[V]) InsertMany(keyframes ...Keyframe[V]) error {
	taken := s.taken()

	var err error
	for _, k := range keyframes {
		if _, ok := taken[k.time]; ok {
			err = &TimeCollisionError{Time: k.time}

			break
		}
		taken[k.time] = struct{}{}
		s.entries = append(s.entries, k)
	}

	s.sort()
	s.updateCursor()

	return err
}

// Remove removes the keyframe at exactly timestamp and reports whether one was removed.
func (s *Sequence[V]) Remove(timestamp float64) bool {
	return s.Retain(func(t float64) bool { return t != timestamp })
}

// Clear removes all keyframes.
func (s *Sequence[V]) Clear() {
	s.Retain(func(float64) bool { return false })
}

// Retain keeps only the keyframes whose time satisfies keep and reports whether any
// keyframe was removed. The playback time is pulled back if it is now past the end.
func (s *Sequence[V]) Retain(keep func(time float64) bool) bool {
	before := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(k Keyframe[V]) bool { return !keep(k.time) })

	if len(s.entries) == before {
		return false
	}

	if d := s.Duration(); s.time > d {
		s.time = d
	}
	s.updateCursor()

	return true
}

// HasKeyframeAt reports whether a keyframe starts at exactly timestamp.
func (s *Sequence[V]) HasKeyframeAt(timestamp float64) bool {
	_, found := slices.BinarySearchFunc(s.entries, timestamp, func(k Keyframe[V], t float64) int {
		return cmp.Compare(k.time, t)
	})

	return found
}

// Len returns the number of keyframes.
func (s *Sequence[V]) Len() int {
	return len(s.entries)
}

// Keyframes returns a copy of the keyframes in time order.
func (s *Sequence[V]) Keyframes() []Keyframe[V] {
	return slices.Clone(s.entries)
}

// All iterates over the keyframes in time order.
func (s *Sequence[V]) All() iter.Seq[Keyframe[V]] {
	return func(yield func(Keyframe[V]) bool) {
		for _, k := range s.entries {
			if !yield(k) {
				return
			}
		}
	}
}

// Pair returns the pair of keyframes being animated between.
//
// Without keyframes both are nil. Before the first keyframe current is nil and next is
// the first keyframe. At or after the last keyframe next is nil.
func (s *Sequence[V]) Pair() (current, next *Keyframe[V]) {
	c, n := s.pair()
	if c >= 0 {
		k := s.entries[c]
		current = &k
	}
	if n >= 0 {
		k := s.entries[n]
		next = &k
	}

	return current, next
}

func (s *Sequence[V]) pair() (current, next int) {
	switch {
	case len(s.entries) == 0:
		return -1, -1
	case s.cursor < 0:
		return -1, 0
	case s.cursor == len(s.entries)-1:
		return s.cursor, -1
	default:
		return s.cursor, s.cursor + 1
	}
}

// NowStrict returns the value at the playback time using only the keyframes of this
// sequence. Before the first keyframe that is the first keyframe's value. It returns false
// only when the sequence is empty.
func (s *Sequence[V]) NowStrict() (V, bool) {
	c, n := s.pair()
	switch {
	case c >= 0 && n >= 0:
		return s.entries[c].TweenTo(s.entries[n], s.time, s.blend), true
	case c >= 0:
		return s.entries[c].value, true
	case n >= 0:
		return s.entries[n].value, true
	default:
		var zero V

		return zero, false
	}
}

// Now returns the value at the playback time. Before the first keyframe it tweens
// linearly from the zero value at time 0; an empty sequence yields the zero value.
func (s *Sequence[V]) Now() V {
	c, n := s.pair()
	switch {
	case c >= 0 && n >= 0:
		return s.entries[c].TweenTo(s.entries[n], s.time, s.blend)
	case c >= 0:
		return s.entries[c].value
	case n >= 0:
		var zero V

		return New(zero, 0, easing.Linear).TweenTo(s.entries[n], s.time, s.blend)
	default:
		var zero V

		return zero
	}
}

// AdvanceBy moves the playback time by delta seconds, which may be negative.
//
// It returns the amount by which delta went outside the sequence: above 0 the sequence
// is at its end, below 0 it is at its start.
func (s *Sequence[V]) AdvanceBy(delta float64) float64 {
	return s.AdvanceTo(s.time + delta)
}

// AdvanceTo moves the playback time to timestamp, clamped to [0, Duration()], and returns
// the amount by which timestamp was outside that range. NaN leaves the time unchanged.
func (s *Sequence[V]) AdvanceTo(timestamp float64) float64 {
	if math.IsNaN(timestamp) {
		timestamp = s.time
	}

	d := s.Duration()
	switch {
	case timestamp < 0:
		s.time = 0
	case timestamp > d:
		s.time = d
	default:
		s.time = timestamp
	}

	s.updateCursor()

	return timestamp - s.time
}

// AdvanceAndMaybeReverse advances by delta. Whenever that runs past either end the
// sequence is reversed and the remainder is played in the new direction, so playback
// bounces back and forth. It reports whether a reversal happened.
//
// A sequence of zero duration never reverses.
func (s *Sequence[V]) AdvanceAndMaybeReverse(delta float64) bool {
	reversed := false

	for {
		overflow := s.AdvanceBy(delta)
		if overflow == 0 || s.Duration() == 0 {
			return reversed
		}

		s.Reverse()
		reversed = true

		if overflow < 0 {
			s.AdvanceTo(s.Duration())
		}

		// two reversals bring playback back to the same place and direction
		delta = reduceCycle(overflow, 2*s.Duration())
	}
}

// AdvanceAndMaybeWrap advances by delta. Whenever that runs past either end playback
// continues from the opposite end, so the sequence loops. It reports whether a wrap
// happened.
//
// A sequence of zero duration never wraps.
func (s *Sequence[V]) AdvanceAndMaybeWrap(delta float64) bool {
	wrapped := false

	for {
		overflow := s.AdvanceBy(delta)
		d := s.Duration()
		if overflow == 0 || d == 0 {
			return wrapped
		}

		wrapped = true

		if overflow < 0 {
			s.AdvanceTo(d)
		} else {
			s.AdvanceTo(0)
		}

		delta = reduceCycle(overflow, d)
	}
}

// reduceCycle drops whole cycles from delta while keeping its sign, leaving a remainder
// in (0, cycle] or [-cycle, 0).
func reduceCycle(delta, cycle float64) float64 {
	if cycle <= 0 || math.Abs(delta) <= cycle {
		return delta
	}

	r := math.Mod(delta, cycle)
	switch {
	case math.IsNaN(r):
		return 0
	case r == 0:
		return math.Copysign(cycle, delta)
	default:
		return r
	}
}

// Reverse mirrors every keyframe around the duration, so the last keyframe comes first,
// and rewinds playback to 0.
func (s *Sequence[V]) Reverse() {
	d := s.Duration()

	slices.Reverse(s.entries)
	for i := range s.entries {
		s.entries[i].time = d - s.entries[i].time
	}
	s.entries = slices.CompactFunc(s.entries, sameTime[V])

	s.AdvanceTo(0)
}

// Duration returns the time of the last keyframe, or 0 without keyframes.
func (s *Sequence[V]) Duration() float64 {
	if len(s.entries) == 0 {
		return 0
	}

	return s.entries[len(s.entries)-1].time
}

// Time returns the playback time in seconds.
func (s *Sequence[V]) Time() float64 {
	return s.time
}

// Progress returns the playback time as a fraction of the duration, or 0 when the duration
// is 0.
func (s *Sequence[V]) Progress() float64 {
	d := s.Duration()
	if d == 0 {
		return 0
	}

	return s.time / d
}

// Finished reports whether playback is at the end. Rewind with AdvanceTo(0).
func (s *Sequence[V]) Finished() bool {
	return s.time == s.Duration()
}

// Clone returns an independent copy of the sequence, including its playback time.
// Curves are shared.
func (s *Sequence[V]) Clone() *Sequence[V] {
	c := *s
	c.entries = slices.Clone(s.entries)

	return &c
}

func (s *Sequence[V]) sort() {
	slices.SortStableFunc(s.entries, func(a, b Keyframe[V]) int {
		return cmp.Compare(a.time, b.time)
	})
}

func (s *Sequence[V]) taken() map[float64]struct{} {
	taken := make(map[float64]struct{}, len(s.entries))
	for _, k := range s.entries {
		taken[k.time] = struct{}{}
	}

	return taken
}

func (s *Sequence[V]) updateCursor() {
	n := len(s.entries)
	if n == 0 {
		s.cursor = -1

		return
	}

	// playback mostly stays on the same keyframe or moves on to the next one
	if c := s.cursor; c >= 0 && c < n && s.entries[c].time <= s.time {
		if c == n-1 || s.entries[c+1].time > s.time {
			return
		}

		if c+2 == n || s.entries[c+2].time > s.time {
			s.cursor = c + 1

			return
		}
	}

	s.cursor = sort.Search(n, func(i int) bool { return s.entries[i].time > s.time }) - 1
}

func sameTime[V any](a, b Keyframe[V]) bool {
	return a.time == b.time
}
