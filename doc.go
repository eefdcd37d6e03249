// Package pixelgrid is a text-driven raster editor: an in-memory grid of
// color tokens edited with one-letter commands typed at a prompt.
//
// What:
//
//	A small, dependency-light toolkit split by concern:
//		• canvas/  — the Grid: dense cells, bounds-checked fills, table rendering
//		• fill/    — flood fill and connected-region queries (Conn4 / Conn8)
//		• command/ — token table, parsing, validation and dispatch (Engine)
//		• store/   — saving rendered grids to <dir>/<name>.txt
//		• palette/ — color tokens to terminal colors
//		• session/ — the prompt/read/execute/print loop
//		• cmd/pixelgrid — CLI entrypoint
//
// Quick ASCII example, after "I 6 3", "H 2 5 2 X", "F 3 2 R":
//
//	0 0 0 0 0 0
//	0 R R R R 0
//	0 0 0 0 0 0
//
// Coordinates typed by users are 1-based (column first); every package below
// command works with 0-based (row, col) indices and half-open ranges.
//
//	go install github.com/katalvlaran/pixelgrid/cmd/pixelgrid@latest
package pixelgrid
