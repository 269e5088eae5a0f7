package keyframe

import (
	"errors"
	"testing"

	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/tween"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	k := New(3.0, -2, nil)
	assert.Equal(t, 0.0, k.Time())
	assert.Equal(t, 3.0, k.Value())
	assert.InDelta(t, easing.Default.Y(0.3), k.Curve().Y(0.3), 1e-12)

	assert.Equal(t, "Keyframe at 1.25 s: 7", New(7, 1.25, easing.Linear).String())
}

func TestTweenTo(t *testing.T) {
	blend := tween.Float[float64]
	from := New(0.0, 0, easing.Linear)
	to := New(10.0, 1, easing.Linear)

	assert.Equal(t, 0.0, from.TweenTo(to, -0.5, blend))
	assert.Equal(t, 10.0, from.TweenTo(to, 1.5, blend))
	assert.Equal(t, 5.0, from.TweenTo(to, 0.5, blend))

	t.Run("uses the curve of the first keyframe", func(t *testing.T) {
		from := New(0.0, 1, easing.InQuad)
		to := New(8.0, 3, easing.OutQuad)
		assert.InDelta(t, 2.0, from.TweenTo(to, 2, blend), 1e-12)
	})

	t.Run("next before current", func(t *testing.T) {
		assert.Equal(t, 0.0, to.TweenTo(from, 0.5, blend))
	})

	t.Run("same time", func(t *testing.T) {
		assert.Equal(t, 10.0, New(0.0, 1, easing.Linear).TweenTo(to, 1, blend))
	})

	t.Run("zero value keyframe", func(t *testing.T) {
		var from Keyframe[float64]
		assert.InDelta(t, 10*easing.Default.Y(0.5), from.TweenTo(to, 0.5, blend), 1e-12)
		assert.NotNil(t, from.Curve())
	})

	t.Run("hold", func(t *testing.T) {
		from := New(1.0, 0, easing.Hold)
		assert.Equal(t, 1.0, from.TweenTo(to, 0.99, blend))
		assert.Equal(t, 10.0, from.TweenTo(to, 1.01, blend))
	})
}

func TestTimeCollisionError(t *testing.T) {
	var err error = &TimeCollisionError{Time: 1.5}

	assert.True(t, errors.Is(err, ErrTimeCollision))
	assert.EqualError(t, err, "keyframe: time collision at 1.5 s")

	var collision *TimeCollisionError
	assert.True(t, errors.As(err, &collision))
	assert.Equal(t, 1.5, collision.Time)
}
