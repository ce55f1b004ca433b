package sand

import (
	"strconv"

	"sandsim/internal/core"
	"sandsim/internal/particle"
)

const (
	paramBrushRadius  = "brush_radius"
	paramTickInterval = "tick_interval_ms"
)

// Parameters reports the grid, brush and scheduler settings.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.Width()),
				intParam("h", "Height", w.grid.Height()),
				intParam("tile", "Tile size", w.grid.TileSize()),
				intParam("sand", "Sand cells", w.grid.Count(particle.Sand)),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam(paramBrushRadius, "Brush radius", w.brush.Radius),
				stringParam("element", "Element", w.brush.Element.String()),
				stringParam("held", "Mouse held", w.input.Held.String()),
			},
		},
		{
			Name: "Scheduler",
			Params: []core.Parameter{
				floatParam(paramTickInterval, "Tick interval (ms)", w.clock.Interval()),
				stringParam("scan", "Scan order", w.stepper.Order().String()),
				boolParam("carry", "Carry overshoot", w.clock.Carry()),
				boolParam("wood", "Wood enabled", w.cfg.Wood),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the settings the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramBrushRadius, Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: MinBrushRadius, HasMin: true},
		{Key: paramTickInterval, Label: "Tick interval", Type: core.ParamTypeFloat, Step: 5, Min: 1, HasMin: true, Max: 1000, HasMax: true},
	}
}

// SetIntParameter updates an integer setting.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case paramBrushRadius:
		w.brush.Radius = value
		w.brush.clamp()
		return true
	default:
		return false
	}
}

// SetFloatParameter updates a floating point setting.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case paramTickInterval:
		if value < 1 {
			value = 1
		}
		w.clock.SetInterval(value)
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
