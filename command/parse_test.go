package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pixelgrid/command"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		want command.Command
	}{
		{"I 10 9", command.Command{Kind: command.KindCreate, Args: []string{"10", "9"}}},
		{"c", command.Command{Kind: command.KindClear, Args: []string{}}},
		{"  l   3 3\tx  ", command.Command{Kind: command.KindPixel, Args: []string{"3", "3", "x"}}},
		{"V 10 2 8 Y", command.Command{Kind: command.KindVertical, Args: []string{"10", "2", "8", "Y"}}},
		{"h 2 8 9 z", command.Command{Kind: command.KindHorizontal, Args: []string{"2", "8", "9", "z"}}},
		{"K 1 1 3 3 R", command.Command{Kind: command.KindRect, Args: []string{"1", "1", "3", "3", "R"}}},
		{"F 5 5 R", command.Command{Kind: command.KindFill, Args: []string{"5", "5", "R"}}},
		{"S out", command.Command{Kind: command.KindSave, Args: []string{"out"}}},
		{"X", command.Command{Kind: command.KindQuit, Args: []string{}}},
	}
	for _, tc := range cases {
		got, ok := command.Parse(tc.line)
		assert.True(t, ok, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
	}
}

func TestParse_Ignored(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "Q 1 2", "II 3 3", "hello", "1 2 3"} {
		_, ok := command.Parse(line)
		assert.False(t, ok, "%q", line)
	}
}

func TestCommand_String(t *testing.T) {
	cmd, _ := command.Parse("k  1 1 3   3 r")
	assert.Equal(t, "K 1 1 3 3 r", cmd.String())
}

func TestKindTable(t *testing.T) {
	want := map[string]int{"I": 2, "C": 0, "L": 3, "V": 4, "H": 4, "K": 5, "F": 3, "S": 1, "X": 0}

	kinds := command.Kinds()
	assert.Len(t, kinds, len(want))
	for _, k := range kinds {
		arity, ok := want[k.Token()]
		if assert.True(t, ok, "unexpected token %q", k.Token()) {
			assert.Equal(t, arity, k.Arity(), k.String())
		}
		got, ok := command.Lookup(k.Token())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	assert.Equal(t, "fill", command.KindFill.String())
	assert.Equal(t, "", command.KindUnknown.Token())
	assert.Equal(t, 0, command.Kind(99).Arity())
	assert.Equal(t, "Kind(99)", command.Kind(99).String())
}
