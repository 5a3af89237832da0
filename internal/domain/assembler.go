package domain

import (
	"sort"

	m "github.com/e-marchand/fourd/internal/model"
)

// AssembleReport combines walker output, manifest contents, and project
// settings into the full report shape. Pure aggregation; no filesystem access
// happens here.
func AssembleReport(root m.Path, walk *WalkResult, deps m.DependencySummary, settings m.ProjectSettings, hasCatalog bool) m.ProjectReport {
	totalLines := 0

	for _, method := range walk.Methods {
		totalLines += method.Lines
	}

	for _, class := range walk.Classes {
		totalLines += class.Lines
	}

	return m.ProjectReport{
		ProjectRoot: string(root),
		Settings:    settings,
		Summary: m.ReportSummary{
			MethodsCount:    len(walk.Methods),
			ClassesCount:    len(walk.Classes),
			FormsCount:      len(walk.Forms),
			DatabaseMethods: walk.DatabaseMethods,
			HasCatalog:      hasCatalog,
			TotalCodeLines:  totalLines,
			Dependencies:    deps,
		},
		Methods: walk.Methods,
		Classes: walk.Classes,
		Forms:   walk.Forms,
	}
}

// CompactReport projects the full report down to summary counts and bare name
// lists. Always derived from the full shape so the two views cannot disagree.
func CompactReport(full m.ProjectReport) m.CompactReport {
	methodNames := make([]string, 0, len(full.Methods))
	for _, method := range full.Methods {
		methodNames = append(methodNames, method.Name)
	}

	classNames := make([]string, 0, len(full.Classes))
	for _, class := range full.Classes {
		classNames = append(classNames, class.Name)
	}

	formNames := make([]string, 0, len(full.Forms))
	for _, form := range full.Forms {
		formNames = append(formNames, form.Name)
	}

	sort.Strings(methodNames)
	sort.Strings(classNames)
	sort.Strings(formNames)

	return m.CompactReport{
		ProjectRoot: full.ProjectRoot,
		Settings:    full.Settings,
		Summary:     full.Summary,
		MethodNames: methodNames,
		ClassNames:  classNames,
		FormNames:   formNames,
	}
}
