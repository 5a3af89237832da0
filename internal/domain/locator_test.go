package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

func newTestLocator() *Locator {
	return NewLocator(adapter.NewLocalProjectFS())
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o750); err != nil {
		t.Fatalf("MkdirAll(%s) error = %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()

	mustMkdirAll(t, filepath.Dir(path))

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

// newProjectTree creates a minimal Project/Sources tree and returns the root.
func newProjectTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	mustMkdirAll(t, filepath.Join(root, "Project", "Sources"))

	return root
}

func TestLocator_Locate_FromDeepPath(t *testing.T) {
	locator := newTestLocator()

	root := newProjectTree(t)
	deep := filepath.Join(root, "Project", "Sources", "Methods", "sub")
	mustMkdirAll(t, deep)

	tests := []struct {
		name  string
		start string
	}{
		{"root itself", root},
		{"inside Project", filepath.Join(root, "Project")},
		{"inside Sources", filepath.Join(root, "Project", "Sources")},
		{"deep below Sources", deep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := locator.Locate(m.Path(tt.start))
			if err != nil {
				t.Fatalf("Locate(%s) error = %v", tt.start, err)
			}

			if string(got) != root {
				t.Fatalf("Locate(%s) = %s, want %s", tt.start, got, root)
			}
		})
	}
}

func TestLocator_Locate_FromFile(t *testing.T) {
	locator := newTestLocator()

	root := newProjectTree(t)
	file := filepath.Join(root, "Project", "Sources", "Methods", "foo.4dm")
	mustWriteFile(t, file, "// foo\n")

	got, err := locator.Locate(m.Path(file))
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}

	if string(got) != root {
		t.Fatalf("Locate(file) = %s, want %s", got, root)
	}
}

func TestLocator_Locate_ProjectFileMarker(t *testing.T) {
	locator := newTestLocator()

	// Alternate convention: Project/*.4DProject, no Sources folder.
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "Project", "MyApp.4DProject"), "{}")

	got, err := locator.Locate(m.Path(root))
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}

	if string(got) != root {
		t.Fatalf("Locate() = %s, want %s", got, root)
	}
}

func TestLocator_Locate_ClosestRootWins(t *testing.T) {
	locator := newTestLocator()

	outer := newProjectTree(t)
	inner := filepath.Join(outer, "Components", "Inner")
	mustMkdirAll(t, filepath.Join(inner, "Project", "Sources"))

	got, err := locator.Locate(m.Path(filepath.Join(inner, "Project", "Sources")))
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}

	if string(got) != inner {
		t.Fatalf("Locate() = %s, want closest root %s", got, inner)
	}
}

func TestLocator_Locate_NotFound(t *testing.T) {
	locator := newTestLocator()

	start := t.TempDir()

	_, err := locator.Locate(m.Path(start))
	if err == nil {
		t.Fatal("Locate() expected error, got nil")
	}

	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("Locate() error = %v, want ErrRootNotFound", err)
	}
}

func TestLocator_IsProjectRoot(t *testing.T) {
	locator := newTestLocator()

	root := newProjectTree(t)
	plain := t.TempDir()

	tests := []struct {
		name string
		dir  string
		want bool
	}{
		{"root with Project/Sources", root, true},
		{"Sources under Project", filepath.Join(root, "Project", "Sources"), true},
		{"Project with Sources", filepath.Join(root, "Project"), true},
		{"unrelated directory", plain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := locator.IsProjectRoot(m.Path(tt.dir)); got != tt.want {
				t.Fatalf("IsProjectRoot(%s) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}
