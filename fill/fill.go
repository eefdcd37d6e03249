// SPDX-License-Identifier: MIT

package fill

import (
	"fmt"

	"github.com/katalvlaran/pixelgrid/canvas"
)

// Flood repaints the region containing (row, col) with value.
//
// Behavior:
//  1. Validate grid, options and start cell.
//  2. If the start cell already holds value, return without touching the grid.
//  3. Paint the start cell and push it; pop cells until the stack is empty,
//     painting then pushing every in-bounds neighbor that still holds the old value.
//
// The grid is only mutated once validation has passed, and the walk itself
// cannot fail, so Flood either repaints the whole region or nothing.
func Flood(g *canvas.Grid, row, col int, value canvas.Cell, opts ...Option) (Result, error) {
	o, err := prepare(g, row, col, opts)
	if err != nil {
		return Result{}, err
	}

	old := g.AtIndex(g.Index(row, col))
	res := Result{Old: old, New: value}
	if old == value {
		return res, nil
	}

	offsets := o.offsets()
	paint := func(r, c int) int {
		i := g.Index(r, c)
		g.SetIndex(i, value)
		o.OnPaint(r, c)
		res.Painted++

		return i
	}

	stack := []int{paint(row, col)}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ur, uc := g.Coordinate(u)
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !g.InBounds(vr, vc) || g.AtIndex(g.Index(vr, vc)) != old {
				continue
			}
			stack = append(stack, paint(vr, vc))
		}
	}

	return res, nil
}

// Region returns the row-major indices of the region containing (row, col),
// in breadth-first order from the start cell. The grid is not modified.
// Use g.Coordinate to turn an index back into (row, col).
func Region(g *canvas.Grid, row, col int, opts ...Option) ([]int, error) {
	o, err := prepare(g, row, col, opts)
	if err != nil {
		return nil, err
	}

	start := g.Index(row, col)
	want := g.AtIndex(start)
	seen := make([]bool, g.Len())
	seen[start] = true
	queue := []int{start}
	offsets := o.offsets()

	for qi := 0; qi < len(queue); qi++ {
		ur, uc := g.Coordinate(queue[qi])
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			v := g.Index(vr, vc)
			if seen[v] || g.AtIndex(v) != want {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue, nil
}

// prepare applies opts and validates the grid and start cell.
func prepare(g *canvas.Grid, row, col int, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if !g.InBounds(row, col) {
		return Options{}, fmt.Errorf("fill: start (%d,%d): %w", row, col, canvas.ErrOutOfBounds)
	}

	return o, nil
}
