// SPDX-License-Identifier: MIT

// Command pixelgrid is an interactive text-driven raster editor.
//
// Usage:
//
//	pixelgrid [--dir files] [--color] [--labels] [--diagonal] [--log-level warn]
//
// Type commands such as "I 10 9", "K 1 1 3 3 R" or "F 5 5 G"; "X" quits.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixelgrid/canvas"
	"github.com/katalvlaran/pixelgrid/command"
	"github.com/katalvlaran/pixelgrid/fill"
	"github.com/katalvlaran/pixelgrid/palette"
	"github.com/katalvlaran/pixelgrid/session"
	"github.com/katalvlaran/pixelgrid/store"
)

// config collects the command-line flags.
type config struct {
	dir      string
	prompt   string
	logLevel string
	color    bool
	labels   bool
	diagonal bool
}

func newRootCmd() *cobra.Command {
	cfg := config{}
	cmd := &cobra.Command{
		Use:   "pixelgrid",
		Short: "Edit a pixel grid with one-letter commands",
		Long: `pixelgrid keeps an image in memory and edits it with commands read from stdin:

  I W H            create a W×H image          C                clear it
  L X Y C          paint pixel (X,Y)            V X Y1 Y2 C      vertical line
  H X1 X2 Y C      horizontal line              K X1 Y1 X2 Y2 C  rectangle
  F X Y C          flood-fill the region at (X,Y)
  S NAME           save to <dir>/NAME.txt       X                quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.dir, "dir", store.DefaultDir, "directory S writes into (must exist)")
	flags.StringVar(&cfg.prompt, "prompt", session.DefaultPrompt, "prompt printed before each command")
	flags.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&cfg.color, "color", false, "colorize painted cells with 24-bit ANSI escapes")
	flags.BoolVar(&cfg.labels, "labels", false, "number rows and columns in the displayed grid")
	flags.BoolVar(&cfg.diagonal, "diagonal", false, "let F spread across diagonal neighbors too")

	return cmd
}

// run wires the engine, file store and session from cfg and runs the loop.
func run(ctx context.Context, cfg config, in io.Reader, out, errOut io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return fmt.Errorf("pixelgrid: --log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	engineOpts := []command.Option{
		command.WithSaver(store.NewFileStore(cfg.dir)),
		command.WithLogger(logger),
	}
	if cfg.diagonal {
		engineOpts = append(engineOpts, command.WithFillOptions(fill.WithConnectivity(fill.Conn8)))
	}

	render := canvas.RenderOptions{Labels: cfg.labels}
	if cfg.color {
		render.Colorize = palette.ANSI
	}

	s := session.New(command.NewEngine(engineOpts...),
		session.WithOutput(out),
		session.WithPrompt(cfg.prompt),
		session.WithRenderOptions(render),
		session.WithLogger(logger),
	)
	logger.Debug("session started", "dir", cfg.dir, "diagonal", cfg.diagonal)

	return s.Run(ctx, in)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
