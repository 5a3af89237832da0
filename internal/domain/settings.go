package domain

import (
	"encoding/json"
	"path/filepath"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

// ReadSettings extracts the reported fields from the project marker file and
// checks for the settings file. Parse failures leave the marker fields unset;
// the marker file is otherwise treated as opaque.
func ReadSettings(fs adapter.ProjectFS, root m.Path) m.ProjectSettings {
	settings := m.ProjectSettings{}

	projectDir := m.Path(filepath.Join(string(root), "Project"))

	entries, err := fs.ReadDir(projectDir)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != projectFileExt {
				continue
			}

			settings.ProjectFile = entry.Name()

			content, err := fs.ReadFile(m.Path(filepath.Join(string(projectDir), entry.Name())))
			if err == nil {
				var doc struct {
					CompatibilityVersion *int  `json:"compatibilityVersion"`
					TokenizedText        *bool `json:"tokenizedText"`
				}

				if json.Unmarshal(content, &doc) == nil {
					settings.CompatibilityVersion = doc.CompatibilityVersion
					settings.TokenizedText = doc.TokenizedText
				}
			}

			break
		}
	}

	settingsPath := m.Path(filepath.Join(string(root), "Project", "Sources", "settings.4DSettings"))
	if info, err := fs.Stat(settingsPath); err == nil && !info.IsDir() {
		settings.HasSettings = true
	}

	return settings
}

// HasCatalog reports whether the project carries a structure catalog.
func HasCatalog(fs adapter.ProjectFS, root m.Path) bool {
	path := m.Path(filepath.Join(string(root), "Project", "Sources", "catalog.4DCatalog"))
	info, err := fs.Stat(path)

	return err == nil && !info.IsDir()
}
