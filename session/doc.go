// SPDX-License-Identifier: MIT

// Package session runs the interactive editor loop.
//
// A Session prompts, reads one line, hands it to a command.Engine and prints
// either the rendered grid or a one-line error, until X, end of input or
// context cancellation. Lines with an unknown token are ignored silently.
// Nothing a user types can end the loop with an error; Run only fails when
// reading input fails or the context is done.
package session
