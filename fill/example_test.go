package fill_test

import (
	"fmt"

	"github.com/katalvlaran/pixelgrid/canvas"
	"github.com/katalvlaran/pixelgrid/fill"
)

// ExampleFlood repaints a horizontal run of X on a small grid.
// Only the run changes; the surrounding background is a different region.
func ExampleFlood() {
	g, _ := canvas.New(6, 3)
	_ = g.FillRow(1, 1, 5, "X")

	res, _ := fill.Flood(g, 1, 2, "R")
	fmt.Printf("%s -> %s, %d cells\n", res.Old, res.New, res.Painted)
	row, _ := g.Row(1)
	fmt.Println(row)

	// Output:
	// X -> R, 4 cells
	// [0 R R R R 0]
}

// ExampleRegion lists the background region around a wall without painting it.
func ExampleRegion() {
	g, _ := canvas.New(3, 2)
	_ = g.FillColumn(1, 0, 2, "#")

	idx, _ := fill.Region(g, 0, 0)
	for _, i := range idx {
		r, c := g.Coordinate(i)
		fmt.Printf("(%d,%d) ", r, c)
	}
	fmt.Println()

	// Output:
	// (0,0) (1,0)
}
