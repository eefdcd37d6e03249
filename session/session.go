// SPDX-License-Identifier: MIT

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/pixelgrid/canvas"
	"github.com/katalvlaran/pixelgrid/command"
)

// Messages printed to the user.
const (
	MsgSuccess     = "Command successfully executed: "
	MsgInvalid     = "Invalid parameters list, try again!"
	MsgNoGrid      = "There is no image yet, create one with I first!"
	MsgOutOfBounds = "Coordinates are outside the image, try again!"
	MsgDimension   = "Image width and height must be positive numbers, try again!"
	MsgSaveFailed  = "Could not save the image, try again!"
	MsgFailed      = "Command could not be executed, try again!"
	MsgBye         = "Bye, bye!"
)

// Session binds an input stream and an output writer to a command.Engine.
type Session struct {
	engine *command.Engine
	opts   Options
}

// New returns a Session driving engine.
func New(engine *command.Engine, opts ...Option) *Session {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Session{engine: engine, opts: o}
}

// Run reads commands from in until X, end of input, or ctx is done.
// It returns nil for X and end of input, ctx.Err() on cancellation,
// and a wrapped error if reading fails.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.opts.Prompt != "" {
			fmt.Fprint(s.opts.Out, s.opts.Prompt)
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("session: read input: %w", err)
			}
			return nil
		}
		if s.Handle(sc.Text()) {
			return nil
		}
	}
}

// Handle executes one input line and reports whether the session should end.
// Unknown tokens and blank lines print nothing.
func (s *Session) Handle(line string) (quit bool) {
	cmd, ok := command.Parse(line)
	if !ok {
		return false
	}

	out, err := s.engine.Execute(cmd)
	if err != nil {
		msg := Message(err)
		if !isUserError(err) {
			s.opts.Logger.Error("command failed", "cmd", cmd.String(), "err", err)
			if cmd.Kind == command.KindSave {
				msg = MsgSaveFailed
			}
		}
		fmt.Fprintln(s.opts.Out, msg)
		return false
	}
	if out.Quit {
		fmt.Fprintln(s.opts.Out, MsgBye)
		return true
	}
	if out.Path != "" {
		s.opts.Logger.Info("image saved", "path", out.Path)
	}

	fmt.Fprintln(s.opts.Out, MsgSuccess)
	s.engine.Grid().Render(s.opts.Out, s.opts.Render)

	return false
}

// Message maps an Execute error to the line shown to the user.
func Message(err error) string {
	switch {
	case errors.Is(err, command.ErrNoGrid):
		return MsgNoGrid
	case errors.Is(err, canvas.ErrOutOfBounds):
		return MsgOutOfBounds
	case errors.Is(err, canvas.ErrInvalidDimension):
		return MsgDimension
	case errors.Is(err, command.ErrInvalidArguments):
		return MsgInvalid
	default:
		return MsgFailed
	}
}

// isUserError reports whether err comes from validating what the user typed.
func isUserError(err error) bool {
	return errors.Is(err, command.ErrNoGrid) ||
		errors.Is(err, canvas.ErrOutOfBounds) ||
		errors.Is(err, canvas.ErrInvalidDimension) ||
		errors.Is(err, command.ErrInvalidArguments)
}
