package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider abstracts read access to the input model directory.
// The converter only ever reads a fixed set of named files, so the surface
// is deliberately small: no walking, no globbing.
type Provider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// ReadDir reads the directory entries at the given path.
	ReadDir(path string) ([]FileInfo, error)
}
