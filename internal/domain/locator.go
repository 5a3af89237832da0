// Package domain implements the project scanning, manifest, and publishing
// logic of the fourd CLI.
package domain

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

// ErrRootNotFound is returned when no ancestor of the start path qualifies as
// a 4D project root.
var ErrRootNotFound = errors.New("no 4D project found")

// projectFileExt marks the alternate root convention: a single *.4DProject
// file inside a Project folder.
const projectFileExt = ".4DProject"

// Locator resolves 4D project roots by walking the ancestor chain of a start
// path. Two independent marker conventions exist in the wild (Project/Sources
// directory presence vs. a Project/*.4DProject file); both are honored and
// neither is preferred over the other.
type Locator struct {
	fs adapter.ProjectFS
}

// NewLocator constructs a Locator over the given filesystem.
func NewLocator(fs adapter.ProjectFS) *Locator {
	return &Locator{fs: fs}
}

// IsProjectRoot reports whether dir matches any recognized root shape. Pure
// predicate over filesystem metadata; file contents are never read.
func (l *Locator) IsProjectRoot(dir m.Path) bool {
	if l.isDir(m.Path(filepath.Join(string(dir), "Project", "Sources"))) {
		return true
	}

	name := filepath.Base(string(dir))
	parent := filepath.Base(filepath.Dir(string(dir)))

	// Caller is already inside Project/Sources; the root is two levels up.
	if name == "Sources" && parent == "Project" {
		return true
	}

	// Caller is inside Project; the root is one level up.
	if name == "Project" && l.isDir(m.Path(filepath.Join(string(dir), "Sources"))) {
		return true
	}

	return l.hasProjectFile(dir)
}

// Locate walks upward from startPath and returns the closest qualifying
// ancestor. If startPath names a file its containing directory is used.
// Returns ErrRootNotFound when no ancestor, including the filesystem root,
// qualifies.
func (l *Locator) Locate(startPath m.Path) (m.Path, error) {
	abs, err := l.fs.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", startPath, err)
	}

	dir := string(abs)
	if info, err := l.fs.Stat(abs); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := l.qualify(m.Path(dir))
		if candidate != "" {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w from %s", ErrRootNotFound, startPath)
		}

		dir = parent
	}
}

// qualify maps a matching directory to the root it denotes: matching from
// inside Project or Project/Sources resolves to the enclosing root, not to
// the matched directory itself.
func (l *Locator) qualify(dir m.Path) m.Path {
	name := filepath.Base(string(dir))
	parent := filepath.Dir(string(dir))

	if name == "Sources" && filepath.Base(parent) == "Project" {
		return m.Path(filepath.Dir(parent))
	}

	if name == "Project" {
		if l.isDir(m.Path(filepath.Join(string(dir), "Sources"))) || l.hasProjectFile(m.Path(parent)) {
			return m.Path(parent)
		}
	}

	if l.isDir(m.Path(filepath.Join(string(dir), "Project", "Sources"))) || l.hasProjectFile(dir) {
		return dir
	}

	return ""
}

// hasProjectFile reports whether dir contains a Project folder holding a
// *.4DProject file.
func (l *Locator) hasProjectFile(dir m.Path) bool {
	entries, err := l.fs.ReadDir(m.Path(filepath.Join(string(dir), "Project")))
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == projectFileExt {
			return true
		}
	}

	return false
}

func (l *Locator) isDir(path m.Path) bool {
	info, err := l.fs.Stat(path)
	return err == nil && info.IsDir()
}
