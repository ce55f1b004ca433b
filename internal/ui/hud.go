//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"sandsim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudHeader     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	hudLabel      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudDim        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonFill    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 20
	buttonSize   = 16
	buttonGap    = 4
)

type hudRow struct {
	header bool
	label  string
	value  string

	control *core.ParameterControl
	numeric float64
	minus   image.Rectangle
	plus    image.Rectangle
}

// HUD renders the sim's parameter snapshot in a panel to the right of the
// grid, with +/- buttons for adjustable controls.
type HUD struct {
	sim      core.Sim
	width    int
	controls map[string]core.ParameterControl
	rows     []hudRow
	offsetX  int
}

// NewHUD constructs a HUD for sim. A non-positive width disables it.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, controls: map[string]core.ParameterControl{}}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls[ctrl.Key] = ctrl
		}
	}
	return h
}

// Width returns the panel width; zero when disabled.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update rebuilds the rows from the sim and handles button clicks.
// panelOffsetX is the screen x coordinate of the panel's left edge.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	h.rebuild()
	h.handleInput()
}

func (h *HUD) rebuild() {
	h.rows = h.rows[:0]
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, group := range provider.Parameters().Groups {
		h.rows = append(h.rows, hudRow{header: true, label: group.Name})
		for _, p := range group.Params {
			row := hudRow{label: p.Label, value: p.Value}
			if ctrl, ok := h.controls[p.Key]; ok {
				if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
					row.control = &ctrl
					row.numeric = v
					row.value = formatValue(ctrl, v)
				}
			}
			h.rows = append(h.rows, row)
		}
	}
	for i := range h.rows {
		if h.rows[i].control == nil {
			continue
		}
		top := panelPadding + i*lineHeight + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, top, h.width-panelPadding, top+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, top, plus.Min.X-buttonGap, top+buttonSize)
		h.rows[i].plus = plus
		h.rows[i].minus = minus
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for _, row := range h.rows {
		if row.control == nil {
			continue
		}
		switch {
		case pt.In(row.minus):
			applyStep(h.sim, *row.control, row.numeric, -1)
			return
		case pt.In(row.plus):
			applyStep(h.sim, *row.control, row.numeric, 1)
			return
		}
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil {
		return
	}
	height := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, float32(offsetX), 0, float32(h.width), float32(height), hudBackground, false)

	face := basicfont.Face7x13
	for i, row := range h.rows {
		baseline := panelPadding + i*lineHeight + 14
		if row.header {
			text.Draw(screen, row.label, face, offsetX+panelPadding, baseline, hudHeader)
			continue
		}
		text.Draw(screen, fmt.Sprintf("  %s", row.label), face, offsetX+panelPadding, baseline, hudDim)

		right := offsetX + h.width - panelPadding
		if row.control != nil {
			right = offsetX + row.minus.Min.X - buttonGap
			h.drawButton(screen, offsetX, row.minus, "-")
			h.drawButton(screen, offsetX, row.plus, "+")
		}
		w := text.BoundString(face, row.value).Dx()
		text.Draw(screen, row.value, face, right-w, baseline, hudLabel)
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, offsetX int, rect image.Rectangle, label string) {
	vector.DrawFilledRect(screen, float32(offsetX+rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), buttonFill, false)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := offsetX + rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(screen, label, face, x, y, hudLabel)
}
