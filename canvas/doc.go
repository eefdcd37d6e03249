// SPDX-License-Identifier: MIT

// Package canvas owns the pixel grid edited by pixelgrid.
//
// What:
//
//   - Grid is a dense width×height rectangle of Cell values stored flat in
//     row-major order, so every row has exactly Width cells by construction.
//   - Cells are either Background (rendered as "0") or an uppercase color token.
//   - Bounds-checked primitives: At, Set, FillRow, FillColumn, FillRect, Clear.
//   - Render draws the grid as a text table for the terminal and for file dumps.
//
// Indices are 0-based. Every range is half-open: [start, end).
//
// Every bulk operation validates its whole range before writing a single cell,
// so a failing call leaves the grid exactly as it was.
//
// Complexity:
//
//   - New, Clear, Clone, Rows:   O(W×H) time and memory.
//   - At, Set:                   O(1).
//   - FillRow / FillColumn:      O(length of the run).
//   - FillRect:                  O(area of the rectangle).
//
// Errors:
//
//   - ErrInvalidDimension: width or height is not a positive integer, or
//     width×height exceeds MaxCells.
//   - ErrOutOfBounds:      a row, column or range lies outside the grid.
package canvas
