package domain

import (
	"embed"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

//go:embed assets/workflows/*.yml
var workflowTemplates embed.FS

// ReleaseTrigger selects which release workflow template to install.
type ReleaseTrigger string

// Supported release triggers.
const (
	ReleaseNone     ReleaseTrigger = ""
	ReleaseOnTag    ReleaseTrigger = "tag"
	ReleaseOnCreate ReleaseTrigger = "create"
)

// WorkflowOptions selects which CI templates to install. Resolved from flags;
// no prompting happens below this point.
type WorkflowOptions struct {
	Build   bool
	Release ReleaseTrigger
	// Force overwrites existing workflow files.
	Force bool
}

// WorkflowInstaller copies the embedded CI workflow templates into a
// project's .github/workflows directory.
type WorkflowInstaller struct {
	fs adapter.ProjectFS
}

// NewWorkflowInstaller constructs a WorkflowInstaller over the given
// filesystem.
func NewWorkflowInstaller(fs adapter.ProjectFS) *WorkflowInstaller {
	return &WorkflowInstaller{fs: fs}
}

// Install places the selected templates under root/.github/workflows and
// returns the installed file names. Existing files are skipped unless Force
// is set.
func (w *WorkflowInstaller) Install(root m.Path, opts WorkflowOptions) ([]string, []string, error) {
	targetDir := filepath.Join(string(root), ".github", "workflows")

	installed := []string{}
	skipped := []string{}

	install := func(templateName, destName string) error {
		dest := m.Path(filepath.Join(targetDir, destName))

		if !opts.Force {
			if _, err := w.fs.Stat(dest); err == nil {
				skipped = append(skipped, destName)
				return nil
			}
		}

		content, err := workflowTemplates.ReadFile("assets/workflows/" + templateName)
		if err != nil {
			return fmt.Errorf("template %s: %w", templateName, err)
		}

		// A template that does not parse as YAML never leaves the binary.
		var doc map[string]interface{}
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return fmt.Errorf("template %s is not valid YAML: %w", templateName, err)
		}

		if err := w.fs.WriteFile(dest, content, 0o644); err != nil {
			return err
		}

		installed = append(installed, destName)

		return nil
	}

	if opts.Build {
		if err := install("build.yml", "build.yml"); err != nil {
			return installed, skipped, err
		}
	}

	switch opts.Release {
	case ReleaseOnTag:
		if err := install("releaseOnTag.yml", "release.yml"); err != nil {
			return installed, skipped, err
		}
	case ReleaseOnCreate:
		if err := install("releaseOnCreate.yml", "release.yml"); err != nil {
			return installed, skipped, err
		}
	}

	return installed, skipped, nil
}

// HasReleaseWorkflow reports whether a release workflow already exists under
// root, covering the historical file names.
func (w *WorkflowInstaller) HasReleaseWorkflow(root m.Path) bool {
	dir := filepath.Join(string(root), ".github", "workflows")

	for _, name := range []string{"release.yml", "releaseOnTag.yml", "releaseOnCreate.yml"} {
		if _, err := w.fs.Stat(m.Path(filepath.Join(dir, name))); err == nil {
			return true
		}
	}

	return false
}
