package model

// ManifestSchemaVersion is the default value for the manifest's version field.
// It is written only when the field is entirely absent, never overwritten.
const ManifestSchemaVersion = 2130

// DependencyEntry is one entry of the dependencies.json mapping. A remote
// dependency carries a GitHub path plus at most one of Tag/Version; a local
// dependency is an empty object here, its location lives in environment4d.json.
type DependencyEntry struct {
	GitHub  string `json:"github,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Version string `json:"version,omitempty"`
}

// IsLocal reports whether the entry stands for a local dependency.
func (e DependencyEntry) IsLocal() bool {
	return e.GitHub == ""
}

// DependencySummary is the dependency section of a project report.
type DependencySummary struct {
	FileExists   bool                       `json:"file_exists"`
	Dependencies map[string]DependencyEntry `json:"dependencies"`
	Error        string                     `json:"error,omitempty"`
}
