// SPDX-License-Identifier: MIT

// Package fill repaints connected regions of a canvas.Grid.
//
// What:
//
//   - Flood replaces the region containing a start cell with a new value.
//   - Region lists the cells of that region without painting them.
//
// A region is the maximal set of cells that share the start cell's value and
// are reachable from it through neighbor steps that never leave the grid.
// Neighbors are the four orthogonal cells (Conn4) unless WithConnectivity(Conn8)
// also admits the diagonals.
//
// Flood walks an explicit stack rather than recursing, so region size is bounded
// only by memory. Every cell is painted before it is pushed: a painted cell no
// longer holds the old value, so it is never pushed again and the walk always
// terminates. Filling a region with its own value returns immediately.
//
// Complexity:
//
//   - Flood:  O(R×d) time, O(R) memory, where R is the region size and d = 4 or 8.
//   - Region: O(R×d) time, O(W×H) memory for the visited bitmap.
//
// Errors:
//
//   - ErrGridNil:            grid pointer is nil.
//   - canvas.ErrOutOfBounds: start cell outside the grid.
//   - ErrOptionViolation:    an Option was given an invalid value.
package fill
