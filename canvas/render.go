// SPDX-License-Identifier: MIT

package canvas

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// RenderOptions tunes Render.
type RenderOptions struct {
	// Colorize, if set, replaces the text of every painted cell.
	// Background cells are never passed to it.
	Colorize func(Cell) string

	// Labels adds a header of 1-based column numbers and a leading column
	// of 1-based row numbers, matching the coordinates users type.
	Labels bool
}

// Render writes g as a bordered text table, one table row per grid row.
// Complexity: O(W×H).
func (g *Grid) Render(w io.Writer, opts RenderOptions) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	if opts.Labels {
		header := make([]string, 0, g.w+1)
		header = append(header, "")
		for c := 1; c <= g.w; c++ {
			header = append(header, strconv.Itoa(c))
		}
		table.SetHeader(header)
	}

	for r := 0; r < g.h; r++ {
		line := make([]string, 0, g.w+1)
		if opts.Labels {
			line = append(line, strconv.Itoa(r+1))
		}
		for _, cell := range g.cells[r*g.w : (r+1)*g.w] {
			line = append(line, renderCell(cell, opts.Colorize))
		}
		table.Append(line)
	}

	table.Render()
}

// String implements fmt.Stringer with an unlabeled, uncolored table.
func (g *Grid) String() string {
	var sb strings.Builder
	g.Render(&sb, RenderOptions{})

	return sb.String()
}

func renderCell(c Cell, colorize func(Cell) string) string {
	if c.IsBackground() || colorize == nil {
		return c.String()
	}

	return colorize(c)
}
