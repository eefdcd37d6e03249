// SPDX-License-Identifier: MIT

// Package store writes rendered grids to text files.
//
// FileStore.Save renders a grid as a plain table and writes it to
// <Dir>/<name>.txt, replacing any previous content. The directory must exist.
// Names that are empty, "." or "..", or that contain a path separator are
// rejected with ErrInvalidName so a save can never leave Dir.
package store
