package model

// ProjectSettings holds the handful of fields read from the .4DProject file
// plus the presence of the settings file.
type ProjectSettings struct {
	ProjectFile          string `json:"project_file,omitempty"`
	CompatibilityVersion *int   `json:"compatibility_version,omitempty"`
	TokenizedText        *bool  `json:"tokenized_text,omitempty"`
	HasSettings          bool   `json:"has_settings"`
}

// ReportSummary carries the aggregate counts of a project scan.
type ReportSummary struct {
	MethodsCount    int               `json:"methods_count"`
	ClassesCount    int               `json:"classes_count"`
	FormsCount      int               `json:"forms_count"`
	DatabaseMethods []string          `json:"database_methods"`
	HasCatalog      bool              `json:"has_catalog"`
	TotalCodeLines  int               `json:"total_code_lines"`
	Dependencies    DependencySummary `json:"dependencies"`
}

// ProjectReport is the full report shape. It is a pure function of the walk
// result, manifest, and settings; never mutated after assembly.
type ProjectReport struct {
	ProjectRoot string           `json:"project_root"`
	Settings    ProjectSettings  `json:"settings"`
	Summary     ReportSummary    `json:"summary"`
	Methods     []MethodSymbol   `json:"methods"`
	Classes     []ClassSymbol    `json:"classes"`
	Forms       []FormDescriptor `json:"forms"`
}

// CompactReport is the summary-only shape. It is always derived from a full
// ProjectReport by projection so the two views cannot disagree.
type CompactReport struct {
	ProjectRoot string          `json:"project_root"`
	Settings    ProjectSettings `json:"settings"`
	Summary     ReportSummary   `json:"summary"`
	MethodNames []string        `json:"method_names"`
	ClassNames  []string        `json:"class_names"`
	FormNames   []string        `json:"form_names"`
}
