// SPDX-License-Identifier: MIT

package session

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/pixelgrid/canvas"
)

// DefaultPrompt is printed before every input line.
const DefaultPrompt = "Insert a valid command: "

// Option configures a Session.
type Option func(*Options)

// Options holds the Session parameters.
type Options struct {
	// Out receives prompts, rendered grids and messages. Default io.Discard.
	Out io.Writer

	// Prompt is printed before each line. Default DefaultPrompt.
	Prompt string

	// Render controls how grids are displayed after each command.
	Render canvas.RenderOptions

	// Logger records rejected commands and save failures. Default discards.
	Logger *slog.Logger
}

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Out:    io.Discard,
		Prompt: DefaultPrompt,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOutput sets the writer for everything the session prints.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Out = w
		}
	}
}

// WithPrompt overrides the prompt. An empty prompt prints nothing.
func WithPrompt(p string) Option {
	return func(o *Options) {
		o.Prompt = p
	}
}

// WithRenderOptions sets how grids are displayed.
func WithRenderOptions(r canvas.RenderOptions) Option {
	return func(o *Options) {
		o.Render = r
	}
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
