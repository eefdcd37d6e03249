// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDimension indicates that requested grid dimensions are not
	// positive or that their product exceeds MaxCells.
	ErrInvalidDimension = errors.New("canvas: invalid dimensions")

	// ErrOutOfBounds indicates that a row, column or range is outside the grid.
	ErrOutOfBounds = errors.New("canvas: index out of bounds")
)

// gridErrorf wraps err with the Grid method and its integer arguments,
// e.g. "Grid.FillRow(4,3,11): canvas: index out of bounds".
func gridErrorf(method string, err error, args ...int) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.Itoa(a)
	}

	return fmt.Errorf("Grid.%s(%s): %w", method, strings.Join(parts, ","), err)
}
