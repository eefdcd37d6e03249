// SPDX-License-Identifier: MIT

package fill

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixelgrid/canvas"
)

var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("fill: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fill: invalid option supplied")
)

// Connectivity selects which cells count as neighbors.
type Connectivity int

const (
	// Conn4 uses the orthogonal neighbors: up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal neighbors.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Option configures a traversal via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Conn selects the neighborhood. Default Conn4.
	Conn Connectivity

	// OnPaint is called once for every cell Flood paints, in paint order.
	OnPaint func(row, col int)

	err error
}

// DefaultOptions returns Conn4 connectivity and a no-op OnPaint hook.
func DefaultOptions() Options {
	return Options{
		Conn:    Conn4,
		OnPaint: func(int, int) {},
	}
}

// WithConnectivity selects Conn4 or Conn8; anything else is an ErrOptionViolation.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %v", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithOnPaint registers a hook observing every painted cell.
// Hooks from repeated WithOnPaint options run in the order given.
func WithOnPaint(fn func(row, col int)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnPaint
		o.OnPaint = func(row, col int) {
			prev(row, col)
			fn(row, col)
		}
	}
}

// Result describes one Flood call.
type Result struct {
	Old     canvas.Cell // value of the region before the fill
	New     canvas.Cell // value written
	Painted int         // number of cells changed; 0 when Old == New
}

// offsets4 lists (dRow, dCol) clockwise from up.
var offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// offsets8 lists (dRow, dCol) clockwise from up, diagonals included.
var offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

func (o Options) offsets() [][2]int {
	if o.Conn == Conn8 {
		return offsets8
	}

	return offsets4
}
