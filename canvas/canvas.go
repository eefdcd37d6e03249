// SPDX-License-Identifier: MIT

package canvas

// MaxCells caps Width×Height so a single I command cannot exhaust memory.
const MaxCells = 1 << 20

// New creates a width×height Grid with every cell set to Background.
// Returns ErrInvalidDimension if width or height is not positive, or if
// width×height exceeds MaxCells.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return nil, gridErrorf("New", ErrInvalidDimension, width, height)
	}

	return &Grid{w: width, h: height, cells: make([]Cell, width*height)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// Index maps (row, col) to its row-major index: row*Width + col.
// The result is meaningful only when InBounds(row, col) holds.
func (g *Grid) Index(row, col int) int {
	return row*g.w + col
}

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.w, idx % g.w
}

// AtIndex returns the cell at a row-major index.
// It panics if idx is outside [0, Len()); callers validate with InBounds first.
func (g *Grid) AtIndex(idx int) Cell {
	return g.cells[idx]
}

// SetIndex stores v at a row-major index.
// It panics if idx is outside [0, Len()).
func (g *Grid) SetIndex(idx int, v Cell) {
	g.cells[idx] = v
}

// At returns the cell at (row, col), or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Background, gridErrorf("At", ErrOutOfBounds, row, col)
	}

	return g.cells[g.Index(row, col)], nil
}

// Set stores v at (row, col), or returns ErrOutOfBounds without writing.
// Complexity: O(1).
func (g *Grid) Set(row, col int, v Cell) error {
	if !g.InBounds(row, col) {
		return gridErrorf("Set", ErrOutOfBounds, row, col)
	}
	g.cells[g.Index(row, col)] = v

	return nil
}

// Clear resets every cell to Background. Dimensions are preserved.
// Complexity: O(W×H).
func (g *Grid) Clear() {
	clear(g.cells)
}

// FillRow sets cells [colStart, colEnd) of row to v.
// Returns ErrOutOfBounds, without writing, if row is outside the grid,
// the range is inverted, or it exceeds the grid width. An empty range is a no-op.
// Complexity: O(colEnd-colStart).
func (g *Grid) FillRow(row, colStart, colEnd int, v Cell) error {
	if row < 0 || row >= g.h || !validRange(colStart, colEnd, g.w) {
		return gridErrorf("FillRow", ErrOutOfBounds, row, colStart, colEnd)
	}
	base := row * g.w
	for i := base + colStart; i < base+colEnd; i++ {
		g.cells[i] = v
	}

	return nil
}

// FillColumn sets cells [rowStart, rowEnd) of col to v.
// Same bounds contract as FillRow, transposed.
// Complexity: O(rowEnd-rowStart).
func (g *Grid) FillColumn(col, rowStart, rowEnd int, v Cell) error {
	if col < 0 || col >= g.w || !validRange(rowStart, rowEnd, g.h) {
		return gridErrorf("FillColumn", ErrOutOfBounds, col, rowStart, rowEnd)
	}
	for r := rowStart; r < rowEnd; r++ {
		g.cells[r*g.w+col] = v
	}

	return nil
}

// FillRect sets every cell in rows [rowStart, rowEnd) and columns
// [colStart, colEnd) to v. Both ranges are validated before any write.
// Complexity: O((rowEnd-rowStart)×(colEnd-colStart)).
func (g *Grid) FillRect(rowStart, rowEnd, colStart, colEnd int, v Cell) error {
	if !validRange(rowStart, rowEnd, g.h) || !validRange(colStart, colEnd, g.w) {
		return gridErrorf("FillRect", ErrOutOfBounds, rowStart, rowEnd, colStart, colEnd)
	}
	for r := rowStart; r < rowEnd; r++ {
		base := r * g.w
		for i := base + colStart; i < base+colEnd; i++ {
			g.cells[i] = v
		}
	}

	return nil
}

// Row returns a copy of one row.
func (g *Grid) Row(row int) ([]Cell, error) {
	if row < 0 || row >= g.h {
		return nil, gridErrorf("Row", ErrOutOfBounds, row)
	}
	out := make([]Cell, g.w)
	copy(out, g.cells[row*g.w:(row+1)*g.w])

	return out, nil
}

// Rows returns a deep copy of the grid as Height slices of Width cells.
// Complexity: O(W×H) time and memory.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.h)
	for r := range out {
		out[r] = make([]Cell, g.w)
		copy(out[r], g.cells[r*g.w:(r+1)*g.w])
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether g and o have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// validRange reports whether [start, end) is a non-inverted range inside [0, limit].
func validRange(start, end, limit int) bool {
	return start >= 0 && start <= end && end <= limit
}
