package easing

import (
	"github.com/fogleman/ease"
)

// Static curves. They hold no state and are safe to share.
var (
	Linear = Func(ease.Linear)

	InQuad    = Func(ease.InQuad)
	OutQuad   = Func(ease.OutQuad)
	InOutQuad = Func(ease.InOutQuad)

	InCubic    = Func(ease.InCubic)
	OutCubic   = Func(ease.OutCubic)
	InOutCubic = Func(ease.InOutCubic)

	InQuart    = Func(ease.InQuart)
	OutQuart   = Func(ease.OutQuart)
	InOutQuart = Func(ease.InOutQuart)

	InQuint    = Func(ease.InQuint)
	OutQuint   = Func(ease.OutQuint)
	InOutQuint = Func(ease.InOutQuint)

	InSine    = Func(ease.InSine)
	OutSine   = Func(ease.OutSine)
	InOutSine = Func(ease.InOutSine)

	InExpo    = Func(ease.InExpo)
	OutExpo   = Func(ease.OutExpo)
	InOutExpo = Func(ease.InOutExpo)

	InCirc    = Func(ease.InCirc)
	OutCirc   = Func(ease.OutCirc)
	InOutCirc = Func(ease.InOutCirc)

	InBack    = Func(ease.InBack)
	OutBack   = Func(ease.OutBack)
	InOutBack = Func(ease.InOutBack)

	InBounce    = Func(ease.InBounce)
	OutBounce   = Func(ease.OutBounce)
	InOutBounce = Func(ease.InOutBounce)

	// Step jumps from start to end halfway through.
	Step = Func(step)
	// Hold keeps the start value until the next keyframe takes over.
	Hold = Func(hold)

	// Default is used by keyframes that are created without a curve.
	Default = InOutCubic
)

func step(x float64) float64 {
	if x < 0.5 {
		return 0
	}

	return 1
}

func hold(float64) float64 {
	return 0
}

// names of the static curves, as accepted by Catalog.
func staticCurves() map[string]Function {
	return map[string]Function{
		"linear": Linear,

		"in-quad":     InQuad,
		"out-quad":    OutQuad,
		"in-out-quad": InOutQuad,

		"in-cubic":     InCubic,
		"out-cubic":    OutCubic,
		"in-out-cubic": InOutCubic,
		"ease-in":      InCubic,
		"ease-out":     OutCubic,
		"ease-in-out":  InOutCubic,

		"in-quart":     InQuart,
		"out-quart":    OutQuart,
		"in-out-quart": InOutQuart,

		"in-quint":     InQuint,
		"out-quint":    OutQuint,
		"in-out-quint": InOutQuint,

		"in-sine":     InSine,
		"out-sine":    OutSine,
		"in-out-sine": InOutSine,

		"in-expo":     InExpo,
		"out-expo":    OutExpo,
		"in-out-expo": InOutExpo,

		"in-circ":     InCirc,
		"out-circ":    OutCirc,
		"in-out-circ": InOutCirc,

		"in-back":     InBack,
		"out-back":    OutBack,
		"in-out-back": InOutBack,

		"in-bounce":     InBounce,
		"out-bounce":    OutBounce,
		"in-out-bounce": InOutBounce,

		"step": Step,
		"hold": Hold,
	}
}
