// SPDX-License-Identifier: MIT

package canvas

// Cell is the value stored in one grid position: Background or a color token.
type Cell string

// Background is the value of an unpainted cell.
const Background Cell = ""

// backgroundText is how Background is rendered.
const backgroundText = "0"

// IsBackground reports whether c is unpainted.
func (c Cell) IsBackground() bool {
	return c == Background
}

// String renders Background as "0" and any other cell as its token.
func (c Cell) String() string {
	if c == Background {
		return backgroundText
	}

	return string(c)
}

// Grid is a dense row-major rectangle of cells.
// The zero value is not usable; create grids with New.
type Grid struct {
	w, h  int    // columns and rows
	cells []Cell // flat backing storage, len == w*h
}
