// SPDX-License-Identifier: MIT

// Package command parses editor command lines and applies them to a canvas.Grid.
//
// What:
//
//   - Kind enumerates the nine commands; Lookup maps a case-insensitive token to a Kind.
//   - Parse splits a line into a Command (Kind plus raw string arguments).
//   - Engine owns the current grid and executes Commands against it.
//
// Command table (1-based user coordinates, colors are upper-cased):
//
//	I width height                          create a new grid
//	C                                       clear the grid
//	L col row color                         paint one cell
//	V col rowStart rowEnd color             paint rows rowStart..rowEnd of col
//	H colStart colEnd row color             paint columns colStart..colEnd of row
//	K colStart rowStart colEnd rowEnd color paint the rectangle between both corners
//	F col row color                         flood-fill the region containing (col,row)
//	S name                                  save the grid to name.txt
//	X                                       quit
//
// Every argument is validated before the grid is touched, so a command either
// applies completely or leaves the grid unchanged.
//
// Errors:
//
//   - ErrInvalidArguments:        wrong argument count, non-numeric value, bad file name.
//   - ErrNoGrid:                  a drawing command ran before I.
//   - ErrNoSaver:                 S ran on an engine without a Saver.
//   - canvas.ErrInvalidDimension: I with a non-positive or non-numeric size.
//   - canvas.ErrOutOfBounds:      coordinates outside the current grid.
package command
