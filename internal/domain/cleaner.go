package domain

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

// junkFileNames are OS artifacts removed anywhere in the tree.
var junkFileNames = []string{".DS_Store", "ehthumbs.db", "Thumbs.db"}

// Cleaner removes generated folders and cache files from a project tree.
type Cleaner struct {
	fs adapter.ProjectFS
}

// NewCleaner constructs a Cleaner over the given filesystem.
func NewCleaner(fs adapter.ProjectFS) *Cleaner {
	return &Cleaner{fs: fs}
}

// Clean removes the well-known generated artifacts under root and returns the
// removed items as root-relative paths. With dryRun set, targets are listed
// but nothing is touched.
func (c *Cleaner) Clean(root m.Path, dryRun bool) ([]string, error) {
	removed := []string{}

	remove := func(path m.Path, label string, recursive bool) error {
		if !dryRun {
			var err error
			if recursive {
				err = c.fs.RemoveAll(path)
			} else {
				err = c.fs.Remove(path)
			}

			if err != nil {
				return err
			}
		}

		removed = append(removed, label)

		return nil
	}

	// DerivedData folders anywhere in the tree.
	derived, err := c.findDirsNamed(root, "DerivedData")
	if err != nil {
		return removed, err
	}

	for _, dir := range derived {
		if err := remove(dir, c.rel(root, dir), true); err != nil {
			return removed, err
		}
	}

	// Libraries folder at root.
	libraries := m.Path(filepath.Join(string(root), "Libraries"))
	if c.isDir(libraries) {
		if err := remove(libraries, "Libraries/", true); err != nil {
			return removed, err
		}
	}

	// userPreferences.* folders at root.
	prefs, err := c.fs.Glob(filepath.Join(string(root), "userPreferences.*"))
	if err == nil {
		for _, pref := range prefs {
			if !c.isDir(pref) {
				continue
			}

			if err := remove(pref, filepath.Base(string(pref))+"/", true); err != nil {
				return removed, err
			}
		}
	}

	// Project/Trash folder.
	trash := m.Path(filepath.Join(string(root), "Project", "Trash"))
	if c.isDir(trash) {
		if err := remove(trash, "Project/Trash/", true); err != nil {
			return removed, err
		}
	}

	// Logs contents; the folder itself stays.
	logs := m.Path(filepath.Join(string(root), "Logs"))
	if entries, err := c.fs.ReadDir(logs); err == nil {
		for _, entry := range entries {
			item := m.Path(filepath.Join(string(logs), entry.Name()))
			if err := remove(item, "Logs/"+entry.Name(), entry.IsDir()); err != nil {
				return removed, err
			}
		}
	}

	// OS junk files anywhere in the tree.
	junk, err := c.findJunkFiles(root)
	if err != nil {
		return removed, err
	}

	for _, file := range junk {
		if err := remove(file, c.rel(root, file), false); err != nil {
			return removed, err
		}
	}

	return removed, nil
}

func (c *Cleaner) findDirsNamed(root m.Path, name string) ([]m.Path, error) {
	var dirs []m.Path

	err := c.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if info.IsDir() && filepath.Base(path) == name {
			dirs = append(dirs, m.Path(path))
			return filepath.SkipDir
		}

		return nil
	})

	return dirs, err
}

func (c *Cleaner) findJunkFiles(root m.Path) ([]m.Path, error) {
	var files []m.Path

	err := c.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		for _, junk := range junkFileNames {
			if filepath.Base(path) == junk {
				files = append(files, m.Path(path))
				break
			}
		}

		return nil
	})

	return files, err
}

func (c *Cleaner) rel(root, path m.Path) string {
	rel, err := filepath.Rel(string(root), string(path))
	if err != nil {
		return string(path)
	}

	return strings.ReplaceAll(rel, string(filepath.Separator), "/")
}

func (c *Cleaner) isDir(path m.Path) bool {
	info, err := c.fs.Stat(path)
	return err == nil && info.IsDir()
}
