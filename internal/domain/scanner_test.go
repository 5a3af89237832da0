package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

func TestScanner_Scan(t *testing.T) {
	scanner := NewScanner(adapter.NewLocalProjectFS())

	root := newProjectTree(t)
	sources := sourcesDir(root)
	mustWriteFile(t, filepath.Join(root, "Project", "MyApp.4DProject"), `{"compatibilityVersion": 2130}`)
	mustWriteFile(t, filepath.Join(sources, "Methods", "foo.4dm"), "a\nb\nc\n")
	mustWriteFile(t, filepath.Join(sources, "Classes", "Thing.4dm"), "Function act\n")
	mustWriteFile(t, filepath.Join(sources, ManifestFileName),
		`{"dependencies":{"Dep":{"github":"acme/Dep"}},"version":2130}`)

	// Scan starts from deep inside the tree.
	report, err := scanner.Scan(context.Background(), ScanArgs{
		Start: m.Path(filepath.Join(sources, "Methods")),
	})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if report.ProjectRoot != root {
		t.Fatalf("ProjectRoot = %q, want %q", report.ProjectRoot, root)
	}

	if report.Summary.MethodsCount != 1 || report.Summary.ClassesCount != 1 {
		t.Fatalf("Summary = %+v", report.Summary)
	}

	if report.Summary.TotalCodeLines != 4 {
		t.Fatalf("TotalCodeLines = %d, want 4", report.Summary.TotalCodeLines)
	}

	if !report.Summary.Dependencies.FileExists {
		t.Fatal("Dependencies.FileExists = false, want true")
	}

	if _, ok := report.Summary.Dependencies.Dependencies["Dep"]; !ok {
		t.Fatalf("Dependencies = %+v, want Dep entry", report.Summary.Dependencies)
	}

	if report.Settings.CompatibilityVersion == nil || *report.Settings.CompatibilityVersion != 2130 {
		t.Fatalf("Settings = %+v", report.Settings)
	}
}

func TestScanner_Scan_NoRoot(t *testing.T) {
	scanner := NewScanner(adapter.NewLocalProjectFS())

	_, err := scanner.Scan(context.Background(), ScanArgs{Start: m.Path(t.TempDir())})
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("Scan() error = %v, want ErrRootNotFound", err)
	}
}
