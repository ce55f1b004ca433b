package ui

import (
	"math"
	"strconv"

	"sandsim/internal/core"
)

// stepInt returns the value one step from current in direction (+1 or -1),
// clamped to the control's bounds, and whether that differs from current.
func stepInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); target < min {
			target = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); target > max {
			target = max
		}
	}
	return target, target != current
}

// stepFloat is stepInt for floating point controls.
func stepFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-current) >= 1e-9
}

// formatValue renders a parameter value with precision matched to the
// control's step.
func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch {
	case ctrl.Step <= 0:
		precision = 2
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// applyStep moves the parameter behind ctrl one step through the sim's
// setters. It reports whether the sim accepted a new value.
func applyStep(sim core.Sim, ctrl core.ParameterControl, current float64, direction int) bool {
	switch ctrl.Type {
	case core.ParamTypeInt:
		setter, ok := sim.(core.IntParameterSetter)
		if !ok {
			return false
		}
		target, changed := stepInt(ctrl, int(math.Round(current)), direction)
		return changed && setter.SetIntParameter(ctrl.Key, target)
	case core.ParamTypeFloat:
		setter, ok := sim.(core.FloatParameterSetter)
		if !ok {
			return false
		}
		target, changed := stepFloat(ctrl, current, direction)
		return changed && setter.SetFloatParameter(ctrl.Key, target)
	default:
		return false
	}
}
