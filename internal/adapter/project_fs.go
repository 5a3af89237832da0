// Package adapter contains filesystem, process, and network adapters for the
// fourd CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "github.com/e-marchand/fourd/internal/model"
)

// ProjectFS abstracts filesystem operations the domain layer relies on when
// scanning user projects. It hides direct `os` access so the domain logic can
// be tested against temporary trees without knowing about the host filesystem.
type ProjectFS interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Stat returns metadata for a path so callers can check existence or
	// distinguish between files and directories.
	Stat(path m.Path) (os.FileInfo, error)

	// ReadDir lists the entries of a directory sorted by filename.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// Glob returns paths matching the pattern, sorted.
	Glob(pattern string) ([]m.Path, error)

	// Walk traverses the tree rooted at root.
	Walk(root m.Path, fn filepath.WalkFunc) error

	// RemoveAll removes a path and everything below it.
	RemoveAll(path m.Path) error

	// Remove removes a single file or empty directory.
	Remove(path m.Path) error

	// Abs returns the absolute form of path.
	Abs(path m.Path) (m.Path, error)
}

// LocalProjectFS is the concrete ProjectFS backed by the os package.
type LocalProjectFS struct{}

// NewLocalProjectFS constructs a LocalProjectFS ready to be wired into the
// domain services.
func NewLocalProjectFS() *LocalProjectFS {
	return &LocalProjectFS{}
}

// ReadFile loads file contents from disk.
func (a *LocalProjectFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file, creating parent directories first.
func (a *LocalProjectFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalProjectFS) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadDir lists directory entries sorted by filename.
func (a *LocalProjectFS) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// Glob returns the sorted paths matching pattern.
func (a *LocalProjectFS) Glob(pattern string) ([]m.Path, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// Walk traverses the tree rooted at root.
func (a *LocalProjectFS) Walk(root m.Path, fn filepath.WalkFunc) error {
	return filepath.Walk(string(root), fn)
}

// RemoveAll removes a path and all its contents.
func (a *LocalProjectFS) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// Remove removes a single file or empty directory.
func (a *LocalProjectFS) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// Abs returns the absolute form of path.
func (a *LocalProjectFS) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
