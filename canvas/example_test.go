package canvas_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pixelgrid/canvas"
)

// ExampleGrid_FillRect paints a 2×2 block in the top-left corner of a 4×3 grid.
// Ranges are half-open, so rows [0,2) and columns [0,2) are painted.
func ExampleGrid_FillRect() {
	g, _ := canvas.New(4, 3)
	_ = g.FillRect(0, 2, 0, 2, "R")

	for _, row := range g.Rows() {
		text := make([]string, len(row))
		for i, c := range row {
			text[i] = c.String()
		}
		fmt.Println(strings.Join(text, " "))
	}

	// Output:
	// R R 0 0
	// R R 0 0
	// 0 0 0 0
}
