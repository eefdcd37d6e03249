// SPDX-License-Identifier: MIT

package palette

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/katalvlaran/pixelgrid/canvas"
)

// shorthand maps one-letter tokens to SVG color keywords.
var shorthand = map[string]string{
	"R": "red",
	"G": "green",
	"B": "blue",
	"Y": "yellow",
	"W": "white",
	"K": "black",
	"O": "orange",
	"P": "purple",
	"C": "cyan",
	"M": "magenta",
}

// Hashed colors share chroma and lightness so they stay readable on dark
// and light terminals alike.
const (
	hashChroma    = 0.55
	hashLightness = 0.7
)

// Resolve returns the display color of c. The second result is false for
// Background, which has no color.
func Resolve(c canvas.Cell) (color.Color, bool) {
	if c.IsBackground() {
		return nil, false
	}
	token := string(c)
	if name, ok := shorthand[token]; ok {
		return colornames.Map[name], true
	}
	if rgba, ok := colornames.Map[strings.ToLower(token)]; ok {
		return rgba, true
	}

	return hashed(token), true
}

// hashed picks a hue from the FNV-1a hash of token.
func hashed(token string) colorful.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(token))
	hue := float64(h.Sum32() % 360)

	return colorful.Hcl(hue, hashChroma, hashLightness).Clamped()
}

// ANSI renders c with a 24-bit foreground escape sequence followed by a reset.
// Background is returned as plain text.
func ANSI(c canvas.Cell) string {
	col, ok := Resolve(c)
	if !ok {
		return c.String()
	}
	cf, _ := colorful.MakeColor(col)
	r, g, b := cf.RGB255()

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, c.String())
}
