// Package term runs the sandbox inside a terminal, one character cell per
// grid cell.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandsim/internal/particle"
	"sandsim/internal/sand"
)

// StatusRows is the number of terminal rows reserved below the grid.
const StatusRows = 1

const frameInterval = 16 * time.Millisecond

// Frontend adapts a sand.World to a tcell screen.
type Frontend struct {
	screen tcell.Screen
	world  *sand.World
	cue    sand.Cue
	styles []tcell.Style

	buttons  tcell.ButtonMask
	paused   bool
	tickOnce bool
	seed     int64
}

// New wires world to screen. cue may be nil.
func New(screen tcell.Screen, world *sand.World, cue sand.Cue, seed int64) *Frontend {
	f := &Frontend{screen: screen, world: world, cue: cue, seed: seed}
	for _, k := range particle.Kinds() {
		c := particle.MustColor(k)
		f.styles = append(f.styles, tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))))
	}
	return f
}

// style returns the cell style for k. A kind outside the registry means the
// grid is corrupted, and MustColor panics with the registry's message.
func (f *Frontend) style(k particle.Kind) tcell.Style {
	if !k.Valid() {
		particle.MustColor(k)
	}
	return f.styles[k]
}

// WindowSize converts a terminal size into the window pixel size a world
// needs so that each grid cell maps to one terminal cell.
func WindowSize(cols, rows, tile int) (int, int) {
	rows -= StatusRows
	if rows < 1 {
		rows = 1
	}
	return cols * tile, rows * tile
}

// Run polls events and draws frames until the user quits.
func (f *Frontend) Run() error {
	f.screen.EnableMouse()
	defer f.screen.DisableMouse()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Frame()
			f.Draw()
		}
	}
}

// HandleEvent applies one tcell event and reports false when the user asked
// to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			return f.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		f.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		f.paused = !f.paused
	case 'n':
		f.tickOnce = true
	case 'r':
		f.world.Reset(f.seed)
	case 'o':
		f.world.ToggleScan()
	case 's':
		f.seed = time.Now().UnixNano()
		f.world.Reset(f.seed)
	case '1', '2', '3', '4':
		if f.world.SelectKey(int(r-'0')) && f.cue != nil {
			f.cue.Element(f.world.Brush().Element)
		}
	}
	return true
}

// handleMouse turns the button mask reported with every tcell mouse event
// into press and release transitions.
func (f *Frontend) handleMouse(x, y int, buttons tcell.ButtonMask) {
	tile := float64(f.world.Grid().TileSize())
	f.world.MoveTo(float64(x)*tile, float64(y)*tile)

	if buttons&tcell.WheelUp != 0 {
		f.world.ScrollBy(1)
	}
	if buttons&tcell.WheelDown != 0 {
		f.world.ScrollBy(-1)
	}

	transitions := []struct {
		mask   tcell.ButtonMask
		button sand.Button
	}{
		{tcell.Button1, sand.ButtonPrimary},
		{tcell.Button2, sand.ButtonSecondary},
		{tcell.Button3, sand.ButtonTertiary},
	}
	for _, tr := range transitions {
		was := f.buttons&tr.mask != 0
		is := buttons&tr.mask != 0
		switch {
		case is && !was:
			f.world.Press(tr.button)
		case was && !is:
			f.world.Release(tr.button)
		}
	}
	f.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
}

// Frame advances the world on the wall clock, honouring pause and
// single-step requests.
func (f *Frontend) Frame() {
	switch {
	case f.tickOnce:
		f.world.Step()
		f.world.Paint()
		f.tickOnce = false
	case f.paused:
		f.world.Paint()
	default:
		f.world.Tick()
	}
}

// Draw renders the grid and the status line.
func (f *Frontend) Draw() {
	g := f.world.Grid()
	w := g.Width()
	for i, k := range g.Cells() {
		f.screen.SetContent(i%w, i/w, ' ', nil, f.style(k))
	}
	f.drawStatus(g.Height())
	f.screen.Show()
}

func (f *Frontend) drawStatus(row int) {
	cols, _ := f.screen.Size()
	in := f.world.Input()
	b := f.world.Brush()
	state := "running"
	if f.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s | %dx%d | brush %s r=%d | held %s | tick %d | scan %s | %s | 1-4 element, o scan, wheel size, q quit",
		f.world.Name(), f.world.Grid().Width(), f.world.Grid().Height(), b.Element, b.Radius, in.Held, f.world.Ticks(), f.world.Scan(), state)
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		f.screen.SetContent(x, row, r, nil, style)
	}
}
