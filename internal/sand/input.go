package sand

import "sandsim/internal/particle"

// Button identifies a pointer button.
type Button int

const (
	// ButtonNone means no paint button is held.
	ButtonNone Button = iota
	// ButtonPrimary paints the selected element.
	ButtonPrimary
	// ButtonSecondary erases.
	ButtonSecondary
	// ButtonTertiary is accepted and ignored.
	ButtonTertiary
)

// String returns the overlay label of the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "LEFT"
	case ButtonSecondary:
		return "RIGHT"
	case ButtonTertiary:
		return "MIDDLE"
	default:
		return "NONE"
	}
}

// Input is the pointer state last reported by a frontend.
type Input struct {
	Held   Button
	X, Y   float64
	Scroll float64
}

// ElementKeys maps the digit keys 1..4 to brush elements.
var ElementKeys = [...]particle.Kind{particle.Sand, particle.Water, particle.Wood, particle.Air}

// Input returns a copy of the current pointer state.
func (w *World) Input() Input { return w.input }

// MoveTo records the pointer position in window pixels.
func (w *World) MoveTo(x, y float64) {
	w.input.X = x
	w.input.Y = y
}

// Press records a button going down and paints the cell under the pointer
// once. The secondary button only takes hold when nothing else is held.
func (w *World) Press(b Button) {
	switch b {
	case ButtonPrimary:
		w.input.Held = ButtonPrimary
		PaintCell(w.grid, w.input.X, w.input.Y, w.brush.Element)
	case ButtonSecondary:
		if w.input.Held == ButtonNone {
			w.input.Held = ButtonSecondary
		}
		PaintCell(w.grid, w.input.X, w.input.Y, particle.Air)
	}
}

// Release records a button going up. Releasing either paint button stops
// painting.
func (w *World) Release(b Button) {
	switch b {
	case ButtonPrimary, ButtonSecondary:
		w.input.Held = ButtonNone
	}
}

// ScrollBy records a vertical scroll delta and resizes the brush from it.
func (w *World) ScrollBy(dy float64) bool {
	w.input.Scroll = dy
	return w.brush.Scroll(dy)
}

// Cue is told about brush element changes made from the keyboard.
type Cue interface {
	Element(k particle.Kind)
}

// SelectKey selects the brush element bound to digit key n (1-based) and
// reports whether the selection changed.
func (w *World) SelectKey(n int) bool {
	if n < 1 || n > len(ElementKeys) {
		return false
	}
	return w.SelectElement(ElementKeys[n-1])
}

// SelectElement sets the brush element. Wood is refused when the world was
// configured without it.
func (w *World) SelectElement(k particle.Kind) bool {
	if k == particle.None || !k.Valid() {
		return false
	}
	if k == particle.Wood && !w.cfg.Wood {
		return false
	}
	if w.brush.Element == k {
		return false
	}
	w.brush.Element = k
	return true
}
