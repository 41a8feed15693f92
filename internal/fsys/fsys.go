// Package fsys defines the filesystem capability used by the generator
// pipeline. Components take an FS value explicitly so tests can substitute
// an in-memory implementation instead of patching anything at runtime.
package fsys

import "os"

// FS is the set of file operations the generator pipeline needs.
type FS interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile writes data to path, creating parent directories as needed.
	WriteFile(path string, data []byte, perm os.FileMode) error
	Remove(path string) error
	Exists(path string) bool
	MkdirAll(path string, perm os.FileMode) error
	// RemoveDirIfEmpty removes path if it is an empty directory.
	// A non-empty or missing directory is a no-op.
	RemoveDirIfEmpty(path string) error
}
