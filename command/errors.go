// SPDX-License-Identifier: MIT

package command

import "errors"

var (
	// ErrInvalidArguments indicates a wrong argument count or an unparsable argument.
	ErrInvalidArguments = errors.New("command: invalid arguments")

	// ErrNoGrid indicates a command that needs a grid ran before any I command.
	ErrNoGrid = errors.New("command: no grid, create one with I first")

	// ErrNoSaver indicates S ran on an Engine built without WithSaver.
	ErrNoSaver = errors.New("command: no saver configured")
)
