// Package num holds the numeric conversions shared by the tweening and easing code.
package num

import (
	"math"
	"unsafe"
)

// Float is any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Integer is any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is any type that can be widened to float64.
type Number interface {
	Float | Integer
}

// ToF64 widens v to float64.
func ToF64[N Number](v N) float64 {
	return float64(v)
}

// FromF64 narrows v to F, saturating at the largest finite magnitude of F.
func FromF64[F Float](v float64) F {
	var zero F
	limit := math.MaxFloat64
	if unsafe.Sizeof(zero) == 4 {
		limit = math.MaxFloat32
	}

	switch {
	case v > limit:
		return F(limit)
	case v < -limit:
		return F(-limit)
	default:
		return F(v)
	}
}

// ToInt rounds v to the nearest integer and saturates it to the range of I.
// NaN maps to zero.
func ToInt[I Integer](v float64) I {
	if math.IsNaN(v) {
		return 0
	}

	lo, hi := IntRange[I]()
	v = math.Round(v)
	switch {
	case v <= lo:
		return minOf[I]()
	case v >= hi:
		return maxOf[I]()
	default:
		return I(v)
	}
}

// IntRange returns the bounds of I as float64 values.
func IntRange[I Integer]() (lo, hi float64) {
	return float64(minOf[I]()), float64(maxOf[I]())
}

func signed[I Integer]() bool {
	var zero I
	return zero-1 < zero
}

func maxOf[I Integer]() I {
	var zero I
	bits := unsafe.Sizeof(zero) * 8
	if signed[I]() {
		return I(uint64(1)<<(bits-1) - 1)
	}

	return ^zero
}

func minOf[I Integer]() I {
	if signed[I]() {
		return -maxOf[I]() - 1
	}

	return 0
}

// Clamp limits v to [lo, hi].
func Clamp[N Number](v, lo, hi N) N {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
