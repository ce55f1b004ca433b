// Package particle holds the closed set of particle kinds a sand grid can
// store together with their display metadata.
package particle

import (
	"fmt"
	"image/color"
)

// Kind identifies the matter occupying a grid cell.
type Kind uint8

const (
	// None is returned for out-of-bounds reads and marks uninitialised cells.
	None Kind = iota
	// Air is the vacant cell.
	Air
	// Sand falls under gravity.
	Sand
	// Wood is static.
	Wood
	// Water is reserved; it has no movement rule yet.
	Water
	// Max bounds the valid range. It is never stored in a grid.
	Max
)

// Info is the display metadata of a kind.
type Info struct {
	Name  string
	Color color.RGBA
}

var table = [Max]Info{
	None:  {Name: "none", Color: color.RGBA{}},
	Air:   {Name: "air", Color: rgba(0x48beffff)},
	Sand:  {Name: "sand", Color: rgba(0xf7dba7ff)},
	Wood:  {Name: "wood", Color: rgba(0x8b5a2bff)},
	Water: {Name: "water", Color: rgba(0x1ca3ecff)},
}

func rgba(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// Valid reports whether k may be stored in a grid.
func (k Kind) Valid() bool { return k < Max }

// Info returns the metadata for k. Kinds outside the valid range report
// the None entry.
func (k Kind) Info() Info {
	if !k.Valid() {
		return table[None]
	}
	return table[k]
}

// String returns the kind's display name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return table[k].Name
}

// Color returns the display color of k and whether k was in range.
func (k Kind) Color() (color.RGBA, bool) {
	if !k.Valid() {
		return color.RGBA{}, false
	}
	return table[k].Color, true
}

// MustColor returns the display color of k. A kind outside the valid range
// means the grid has been corrupted and MustColor panics.
func MustColor(k Kind) color.RGBA {
	c, ok := k.Color()
	if !ok {
		panic(fmt.Sprintf("particle: unknown kind %d in grid", uint8(k)))
	}
	return c
}

// Palette returns the color table indexed by kind ordinal, suitable for
// palette-based blitting of a grid's cells.
func Palette() []color.RGBA {
	palette := make([]color.RGBA, Max)
	for i := range palette {
		palette[i] = table[i].Color
	}
	return palette
}

// Kinds lists every storable kind in ordinal order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, Max)
	for k := None; k < Max; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Parse resolves a display name back to its kind.
func Parse(name string) (Kind, bool) {
	for k := None; k < Max; k++ {
		if table[k].Name == name {
			return k, true
		}
	}
	return None, false
}
