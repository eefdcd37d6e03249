// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pixelgrid/canvas"
)

// DefaultDir is the directory saves go to when none is configured.
const DefaultDir = "files"

// Ext is appended to every saved name.
const Ext = ".txt"

var (
	// ErrInvalidName indicates a name that is empty or would escape the directory.
	ErrInvalidName = errors.New("store: invalid file name")

	// ErrGridNil indicates Save was called without a grid.
	ErrGridNil = errors.New("store: grid is nil")
)

// FileStore saves grids as text files inside Dir.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir, or DefaultDir if dir is empty.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultDir
	}

	return &FileStore{Dir: dir}
}

// ValidName reports whether name can be saved without leaving the directory:
// it must be non-empty, not "." or "..", and free of path separators.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// Path returns the file a save under name would write.
func (s *FileStore) Path(name string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return filepath.Join(s.Dir, name+Ext), nil
}

// Save renders g without colors or labels and writes it to Path(name),
// truncating an existing file. The file is closed on every path.
func (s *FileStore) Save(name string, g *canvas.Grid) (path string, err error) {
	if g == nil {
		return "", ErrGridNil
	}
	path, err = s.Path(name)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("store: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("store: close %s: %w", path, cerr)
		}
	}()

	w := &errWriter{w: f}
	g.Render(w, canvas.RenderOptions{})
	if w.err != nil {
		return "", fmt.Errorf("store: write %s: %w", path, w.err)
	}

	return path, nil
}

// errWriter remembers the first write error; Grid.Render has no error result.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err

	return n, err
}
