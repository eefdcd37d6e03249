// SPDX-License-Identifier: MIT

// Package palette turns color tokens into display colors.
//
// Tokens are free-form uppercase strings. Resolve maps them, in order, through:
//
//   - one-letter shorthands (R, G, B, Y, W, K, ...),
//   - the SVG 1.1 color keywords from golang.org/x/image/colornames (RED, NAVY, ...),
//   - a stable hue derived from the token's hash, so unknown tokens still get a
//     distinct, repeatable color.
//
// ANSI wraps a token in a 24-bit foreground escape for terminals that support it.
package palette
