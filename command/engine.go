// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pixelgrid/canvas"
	"github.com/katalvlaran/pixelgrid/fill"
	"github.com/katalvlaran/pixelgrid/store"
)

// Saver persists a grid under a user-supplied name.
type Saver interface {
	Save(name string, g *canvas.Grid) (path string, err error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSaver sets the collaborator used by S.
func WithSaver(s Saver) Option {
	return func(e *Engine) {
		if s != nil {
			e.saver = s
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithFillOptions forwards options to every fill.Flood call made by F.
func WithFillOptions(opts ...fill.Option) Option {
	return func(e *Engine) {
		e.fillOpts = append(e.fillOpts, opts...)
	}
}

// Outcome reports what a successful Execute did.
type Outcome struct {
	Kind    Kind
	Painted int    // cells changed by F
	Path    string // file written by S
	Quit    bool   // X was executed
}

// Engine holds the editor's current grid and applies commands to it.
// It is not safe for concurrent use.
type Engine struct {
	grid     *canvas.Grid
	saver    Saver
	log      *slog.Logger
	fillOpts []fill.Option
}

// NewEngine returns an Engine with no grid.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Grid returns the current grid, or nil before the first I.
// The grid is owned by the engine; callers must not modify it.
func (e *Engine) Grid() *canvas.Grid {
	return e.grid
}

// Execute validates cmd and applies it. On error the grid is unchanged.
func (e *Engine) Execute(cmd Command) (Outcome, error) {
	k := cmd.Kind
	if !k.valid() {
		return Outcome{}, fmt.Errorf("command: unknown kind %v: %w", k, ErrInvalidArguments)
	}
	if len(cmd.Args) != k.Arity() {
		return Outcome{}, fmt.Errorf("command: %s takes %d arguments, got %d: %w",
			k.Token(), k.Arity(), len(cmd.Args), ErrInvalidArguments)
	}

	out, err := e.dispatch(k, cmd.Args)
	if err != nil {
		e.log.Debug("command rejected", "cmd", cmd.String(), "err", err)
		return Outcome{}, err
	}
	out.Kind = k
	e.log.Debug("command applied", "cmd", cmd.String(), "painted", out.Painted)

	return out, nil
}

func (e *Engine) dispatch(k Kind, args []string) (Outcome, error) {
	switch k {
	case KindCreate:
		return Outcome{}, e.create(args)
	case KindClear:
		if e.grid == nil {
			return Outcome{}, ErrNoGrid
		}
		e.grid.Clear()
		return Outcome{}, nil
	case KindPixel:
		return Outcome{}, e.pixel(args)
	case KindVertical:
		return Outcome{}, e.vertical(args)
	case KindHorizontal:
		return Outcome{}, e.horizontal(args)
	case KindRect:
		return Outcome{}, e.rect(args)
	case KindFill:
		return e.flood(args)
	case KindSave:
		return e.save(args)
	case KindQuit:
		return Outcome{Quit: true}, nil
	case KindUnknown:
	}

	return Outcome{}, fmt.Errorf("command: unhandled kind %v: %w", k, ErrInvalidArguments)
}

// create handles "I width height". Size errors are ErrInvalidDimension,
// whether the value is non-numeric or non-positive.
func (e *Engine) create(args []string) error {
	w, errW := strconv.Atoi(args[0])
	h, errH := strconv.Atoi(args[1])
	if errW != nil || errH != nil {
		return fmt.Errorf("command: I %s %s: %w", args[0], args[1], canvas.ErrInvalidDimension)
	}
	g, err := canvas.New(w, h)
	if err != nil {
		return err
	}
	e.grid = g

	return nil
}

// pixel handles "L col row color".
func (e *Engine) pixel(args []string) error {
	n, err := ints(args[:2])
	if err != nil {
		return err
	}
	if e.grid == nil {
		return ErrNoGrid
	}
	col, row := n[0]-1, n[1]-1

	return e.grid.Set(row, col, color(args[2]))
}

// vertical handles "V col rowStart rowEnd color"; both rows are included.
func (e *Engine) vertical(args []string) error {
	n, err := ints(args[:3])
	if err != nil {
		return err
	}
	if e.grid == nil {
		return ErrNoGrid
	}
	col, rowStart, rowEnd := n[0]-1, n[1]-1, n[2]

	return e.grid.FillColumn(col, rowStart, rowEnd, color(args[3]))
}

// horizontal handles "H colStart colEnd row color" as the half-open
// column range [colStart-1, colEnd).
func (e *Engine) horizontal(args []string) error {
	n, err := ints(args[:3])
	if err != nil {
		return err
	}
	if e.grid == nil {
		return ErrNoGrid
	}
	colStart, colEnd, row := n[0]-1, n[1], n[2]-1

	return e.grid.FillRow(row, colStart, colEnd, color(args[3]))
}

// rect handles "K colStart rowStart colEnd rowEnd color" with the same
// half-open convention as H on both axes.
func (e *Engine) rect(args []string) error {
	n, err := ints(args[:4])
	if err != nil {
		return err
	}
	if e.grid == nil {
		return ErrNoGrid
	}
	colStart, rowStart, colEnd, rowEnd := n[0]-1, n[1]-1, n[2], n[3]

	return e.grid.FillRect(rowStart, rowEnd, colStart, colEnd, color(args[4]))
}

// flood handles "F col row color". With debug logging enabled it also
// logs the 1-based bounding box of the painted cells.
func (e *Engine) flood(args []string) (Outcome, error) {
	n, err := ints(args[:2])
	if err != nil {
		return Outcome{}, err
	}
	if e.grid == nil {
		return Outcome{}, ErrNoGrid
	}

	opts := e.fillOpts
	var box *bounds
	if e.log.Enabled(context.Background(), slog.LevelDebug) {
		box = newBounds()
		opts = append(opts[:len(opts):len(opts)], fill.WithOnPaint(box.add))
	}
	res, err := fill.Flood(e.grid, n[1]-1, n[0]-1, color(args[2]), opts...)
	if err != nil {
		return Outcome{}, err
	}
	if box != nil && res.Painted > 0 {
		e.log.Debug("region filled", "old", res.Old, "new", res.New,
			"left", box.left+1, "top", box.top+1, "right", box.right+1, "bottom", box.bottom+1)
	}

	return Outcome{Painted: res.Painted}, nil
}

// bounds tracks the smallest rectangle covering every added cell.
type bounds struct {
	top, left, bottom, right int
}

func newBounds() *bounds {
	return &bounds{top: math.MaxInt, left: math.MaxInt, bottom: -1, right: -1}
}

func (b *bounds) add(row, col int) {
	b.top = min(b.top, row)
	b.bottom = max(b.bottom, row)
	b.left = min(b.left, col)
	b.right = max(b.right, col)
}

// save handles "S name".
func (e *Engine) save(args []string) (Outcome, error) {
	name := args[0]
	if !store.ValidName(name) {
		return Outcome{}, fmt.Errorf("command: file name %q: %w", name, ErrInvalidArguments)
	}
	if e.grid == nil {
		return Outcome{}, ErrNoGrid
	}
	if e.saver == nil {
		return Outcome{}, ErrNoSaver
	}
	path, err := e.saver.Save(name, e.grid)
	if err != nil {
		return Outcome{}, fmt.Errorf("command: save %q: %w", name, err)
	}

	return Outcome{Path: path}, nil
}

// ints parses every argument as a base-10 integer.
func ints(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("command: argument %d %q is not a number: %w", i+1, a, ErrInvalidArguments)
		}
		out[i] = v
	}

	return out, nil
}

// color normalizes a color token.
func color(token string) canvas.Cell {
	return canvas.Cell(strings.ToUpper(token))
}
