package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

// RemoteKind selects the hosting service CLI used for remote creation.
type RemoteKind string

// Supported hosting services.
const (
	RemoteGitHub RemoteKind = "github"
	RemoteGitLab RemoteKind = "gitlab"
)

// cli returns the hosting CLI binary for the remote kind.
func (r RemoteKind) cli() string {
	if r == RemoteGitLab {
		return "glab"
	}

	return "gh"
}

// PublishOptions holds every choice the publish flow needs, resolved from
// flags up front. There are no interactive prompts below this point.
type PublishOptions struct {
	Remote      RemoteKind
	Public      bool
	Description string
}

// PublishStatus reports what the publish flow did.
type PublishStatus struct {
	ProjectName   string
	Root          m.Path
	Initialized   bool
	ReadmeCreated bool
	RemoteCreated bool
	Messages      []string
}

// Publisher drives the version-control and hosting CLIs to publish a project.
// Every external invocation carries an explicit working directory.
type Publisher struct {
	fs     adapter.ProjectFS
	runner adapter.CommandRunner
}

// NewPublisher constructs a Publisher over the given filesystem and command
// runner.
func NewPublisher(fs adapter.ProjectFS, runner adapter.CommandRunner) *Publisher {
	return &Publisher{fs: fs, runner: runner}
}

// Publish initializes a git repository if needed, creates the hosting remote,
// and pushes. Missing tools and failed auth are reported as errors before any
// repository state changes.
func (p *Publisher) Publish(ctx context.Context, root m.Path, opts PublishOptions) (*PublishStatus, error) {
	if !p.runner.LookPath("git") {
		return nil, fmt.Errorf("git is not installed")
	}

	cli := opts.Remote.cli()
	if !p.runner.LookPath(cli) {
		return nil, fmt.Errorf("%s CLI is not installed", cli)
	}

	status := &PublishStatus{Root: root, ProjectName: p.projectName(root)}

	workDir := string(root)

	if !p.isGitRepo(root) {
		steps := [][]string{
			{"init"},
			{"add", "."},
			{"commit", "-m", "Initial commit"},
		}

		for _, args := range steps {
			if out, err := p.runner.Run(ctx, workDir, "git", args...); err != nil {
				return status, fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(out), err)
			}
		}

		status.Initialized = true
		status.Messages = append(status.Messages, "Git repository initialized")
	} else {
		status.Messages = append(status.Messages, "Git repository already initialized")
	}

	if p.hasRemote(ctx, workDir) {
		status.Messages = append(status.Messages, "Remote already configured")
		return status, nil
	}

	if out, err := p.runner.Run(ctx, workDir, cli, "auth", "status"); err != nil {
		return status, fmt.Errorf("%s is not authenticated (run: %s auth login): %s", cli, cli, strings.TrimSpace(out))
	}

	if opts.Description != "" {
		if p.createReadme(root, status.ProjectName, opts.Description) {
			status.ReadmeCreated = true

			if out, err := p.runner.Run(ctx, workDir, "git", "add", "README.md"); err != nil {
				return status, fmt.Errorf("git add: %s: %w", strings.TrimSpace(out), err)
			}

			if out, err := p.runner.Run(ctx, workDir, "git", "commit", "-m", "Add README.md"); err != nil {
				return status, fmt.Errorf("git commit: %s: %w", strings.TrimSpace(out), err)
			}

			status.Messages = append(status.Messages, "Created README.md")
		}
	}

	args := []string{"repo", "create", status.ProjectName, "--source=.", "--push"}

	if opts.Public {
		args = append(args, "--public")
	} else {
		args = append(args, "--private")
	}

	if opts.Description != "" {
		args = append(args, "--description", opts.Description)
	}

	if out, err := p.runner.Run(ctx, workDir, cli, args...); err != nil {
		return status, fmt.Errorf("%s repo create: %s: %w", cli, strings.TrimSpace(out), err)
	}

	status.RemoteCreated = true
	status.Messages = append(status.Messages, fmt.Sprintf("Repository created: %s", status.ProjectName))

	return status, nil
}

// projectName derives the repository name from the .4DProject file stem,
// falling back to the root folder name.
func (p *Publisher) projectName(root m.Path) string {
	entries, err := p.fs.ReadDir(m.Path(filepath.Join(string(root), "Project")))
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() && filepath.Ext(entry.Name()) == projectFileExt {
				return strings.TrimSuffix(entry.Name(), projectFileExt)
			}
		}
	}

	return filepath.Base(string(root))
}

func (p *Publisher) isGitRepo(root m.Path) bool {
	_, err := p.fs.Stat(m.Path(filepath.Join(string(root), ".git")))
	return err == nil
}

func (p *Publisher) hasRemote(ctx context.Context, workDir string) bool {
	out, err := p.runner.Run(ctx, workDir, "git", "remote", "get-url", "origin")
	return err == nil && strings.TrimSpace(out) != ""
}

// createReadme writes a README from the description unless one exists.
func (p *Publisher) createReadme(root m.Path, name, description string) bool {
	path := m.Path(filepath.Join(string(root), "README.md"))
	if _, err := p.fs.Stat(path); err == nil {
		return false
	}

	content := fmt.Sprintf("# %s\n\n%s\n", name, description)

	return p.fs.WriteFile(path, []byte(content), 0o644) == nil
}
