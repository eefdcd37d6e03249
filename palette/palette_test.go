package palette_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/katalvlaran/pixelgrid/canvas"
	"github.com/katalvlaran/pixelgrid/palette"
)

func TestResolve_Background(t *testing.T) {
	c, ok := palette.Resolve(canvas.Background)
	assert.False(t, ok)
	assert.Nil(t, c)
}

func TestResolve_Shorthand(t *testing.T) {
	cases := map[canvas.Cell]color.RGBA{
		"R": colornames.Red,
		"B": colornames.Blue,
		"Y": colornames.Yellow,
		"K": colornames.Black,
	}
	for token, want := range cases {
		got, ok := palette.Resolve(token)
		require.True(t, ok, "token %q", token)
		assert.Equal(t, want, got, "token %q", token)
	}
}

func TestResolve_NamedColor(t *testing.T) {
	got, ok := palette.Resolve("NAVY")
	require.True(t, ok)
	assert.Equal(t, colornames.Navy, got)

	// Keyword lookup is case-insensitive.
	got, ok = palette.Resolve("navy")
	require.True(t, ok)
	assert.Equal(t, colornames.Navy, got)
}

func TestResolve_HashedIsStableAndOpaque(t *testing.T) {
	a, ok := palette.Resolve("X")
	require.True(t, ok)
	b, _ := palette.Resolve("X")
	assert.Equal(t, a, b, "same token must resolve to the same color")

	_, _, _, alpha := a.RGBA()
	assert.Equal(t, uint32(0xffff), alpha)
}

func TestANSI(t *testing.T) {
	assert.Equal(t, "\x1b[38;2;255;0;0mR\x1b[0m", palette.ANSI("R"))
	assert.Equal(t, "0", palette.ANSI(canvas.Background))

	s := palette.ANSI("X")
	assert.True(t, strings.HasPrefix(s, "\x1b[38;2;"))
	assert.True(t, strings.HasSuffix(s, "mX\x1b[0m"))
}
