package keyframe

import (
	"errors"
	"fmt"
)

// ErrTimeCollision matches every TimeCollisionError.
var ErrTimeCollision = errors.New("time collision")

// TimeCollisionError is returned when a keyframe is inserted at a time that is already
// taken by another keyframe.
type TimeCollisionError struct {
	Time float64
}

func (e *TimeCollisionError) Error() string {
	return fmt.Sprintf("keyframe: %v at %g s", ErrTimeCollision, e.Time)
}

func (e *TimeCollisionError) Is(target error) bool {
	return target == ErrTimeCollision
}
