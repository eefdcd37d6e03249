package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelgrid/canvas"
	"github.com/katalvlaran/pixelgrid/store"
)

func TestSave_WritesRenderedGrid(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	g, err := canvas.New(10, 9)
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 2, "X"))

	path, err := s.Save("text", g)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "text.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.String(), string(data))

	rows := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, rows, 9+2, "one line per grid row plus borders")
	assert.NotContains(t, string(data), "\x1b[", "files are never colorized")
}

func TestSave_Overwrites(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	big, err := canvas.New(20, 20)
	require.NoError(t, err)
	_, err = s.Save("pic", big)
	require.NoError(t, err)

	small, err := canvas.New(1, 1)
	require.NoError(t, err)
	path, err := s.Save("pic", small)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, small.String(), string(data))
}

func TestSave_InvalidName(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	g, err := canvas.New(2, 2)
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../x", "a/b", `a\b`} {
		_, err := s.Save(name, g)
		assert.ErrorIs(t, err, store.ErrInvalidName, "%q", name)
	}
}

func TestValidName(t *testing.T) {
	for _, name := range []string{"text", "my-pic_2", "a.b", "..x"} {
		assert.True(t, store.ValidName(name), "%q", name)
	}
	for _, name := range []string{"", ".", "..", "../x", "a/b", `a\b`, "/abs"} {
		assert.False(t, store.ValidName(name), "%q", name)
	}
}

func TestSave_Errors(t *testing.T) {
	s := store.NewFileStore(filepath.Join(t.TempDir(), "missing"))

	_, err := s.Save("x", nil)
	assert.ErrorIs(t, err, store.ErrGridNil)

	g, err := canvas.New(2, 2)
	require.NoError(t, err)
	_, err = s.Save("x", g)
	assert.ErrorIs(t, err, os.ErrNotExist, "directory is not created")
}

func TestNewFileStore_DefaultDir(t *testing.T) {
	s := store.NewFileStore("")
	assert.Equal(t, store.DefaultDir, s.Dir)

	path, err := s.Path("out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("files", "out.txt"), path)
}
