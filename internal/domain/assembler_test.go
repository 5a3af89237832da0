package domain

import (
	"reflect"
	"testing"

	m "github.com/e-marchand/fourd/internal/model"
)

func sampleWalkResult() *WalkResult {
	return &WalkResult{
		Methods: []m.MethodSymbol{
			{Name: "beta", Lines: 10},
			{Name: "alpha", Lines: 5},
		},
		Classes: []m.ClassSymbol{
			{Name: "Person", Lines: 20, Properties: []string{"name"}, Functions: []m.FunctionDecl{{Name: "greet"}}},
		},
		DatabaseMethods: []string{"onStartup"},
		Forms: []m.FormDescriptor{
			{Name: "Main", HasFormFile: true, Methods: []string{"onLoad"}},
		},
	}
}

func TestAssembleReport(t *testing.T) {
	deps := m.DependencySummary{FileExists: true, Dependencies: map[string]m.DependencyEntry{
		"Foo": {GitHub: "acme/Foo"},
	}}
	settings := m.ProjectSettings{ProjectFile: "MyApp.4DProject", HasSettings: true}

	report := AssembleReport("/tmp/MyApp", sampleWalkResult(), deps, settings, true)

	if report.ProjectRoot != "/tmp/MyApp" {
		t.Fatalf("ProjectRoot = %q", report.ProjectRoot)
	}

	if report.Summary.MethodsCount != 2 || report.Summary.ClassesCount != 1 || report.Summary.FormsCount != 1 {
		t.Fatalf("Summary counts = %+v", report.Summary)
	}

	// Method and class lines only; forms carry no line counts.
	if report.Summary.TotalCodeLines != 35 {
		t.Fatalf("TotalCodeLines = %d, want 35", report.Summary.TotalCodeLines)
	}

	if !report.Summary.HasCatalog {
		t.Fatal("HasCatalog = false, want true")
	}

	if !reflect.DeepEqual(report.Summary.DatabaseMethods, []string{"onStartup"}) {
		t.Fatalf("DatabaseMethods = %v", report.Summary.DatabaseMethods)
	}

	if report.Settings.ProjectFile != "MyApp.4DProject" {
		t.Fatalf("Settings = %+v", report.Settings)
	}
}

func TestCompactReport_Projection(t *testing.T) {
	full := AssembleReport("/tmp/MyApp", sampleWalkResult(), m.DependencySummary{}, m.ProjectSettings{}, false)

	compact := CompactReport(full)

	if compact.ProjectRoot != full.ProjectRoot {
		t.Fatalf("ProjectRoot = %q, want %q", compact.ProjectRoot, full.ProjectRoot)
	}

	if !reflect.DeepEqual(compact.Summary, full.Summary) {
		t.Fatalf("Summary diverged: %+v vs %+v", compact.Summary, full.Summary)
	}

	if !reflect.DeepEqual(compact.MethodNames, []string{"alpha", "beta"}) {
		t.Fatalf("MethodNames = %v, want sorted names", compact.MethodNames)
	}

	if !reflect.DeepEqual(compact.ClassNames, []string{"Person"}) {
		t.Fatalf("ClassNames = %v", compact.ClassNames)
	}

	if !reflect.DeepEqual(compact.FormNames, []string{"Main"}) {
		t.Fatalf("FormNames = %v", compact.FormNames)
	}
}

func TestCompactReport_EmptyProject(t *testing.T) {
	full := AssembleReport("/tmp/Empty", &WalkResult{}, m.DependencySummary{}, m.ProjectSettings{}, false)

	compact := CompactReport(full)

	if compact.MethodNames == nil || compact.ClassNames == nil || compact.FormNames == nil {
		t.Fatal("name lists must be empty slices, not nil")
	}

	if len(compact.MethodNames)+len(compact.ClassNames)+len(compact.FormNames) != 0 {
		t.Fatalf("expected empty name lists, got %v %v %v", compact.MethodNames, compact.ClassNames, compact.FormNames)
	}
}
