package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

// ErrConflictingOptions is returned when both an exact tag and a semantic
// version are requested for one dependency. Checked before any file is
// touched.
var ErrConflictingOptions = errors.New("cannot specify both a tag and a version")

// githubURLRe matches plain repository URLs and release-tag URLs.
var githubURLRe = regexp.MustCompile(`^https?://github\.com/([^/]+/[^/]+?)(?:\.git)?(?:/releases/tag/([^/]+))?/?$`)

// AddRequest describes one dependency to record, resolved entirely from flags.
type AddRequest struct {
	// Repo is a local path, a GitHub owner/repo, or a GitHub URL.
	Repo string
	// Name overrides the derived dependency name.
	Name string
	// Tag pins an exact release tag. Mutually exclusive with Version.
	Tag string
	// Version requests a semantic version (e.g. "latest", "1.1.0").
	Version string
	// Start is where root location begins (default: working directory).
	Start m.Path
	// DryRun renders the manifest change without writing anything.
	DryRun bool
}

// AddResult reports what an add operation did (or, for a dry run, would do).
type AddResult struct {
	Name     string
	Root     m.Path
	Modified []m.Path
	Messages []string
	// Before/After hold the manifest bytes around the upsert for diffing.
	Before []byte
	After  []byte
}

// DependencyService records dependencies in the manifest and, for local
// non-sibling dependencies, in the environment file.
type DependencyService struct {
	fs      adapter.ProjectFS
	locator *Locator
	merger  *Merger
}

// NewDependencyService wires a DependencyService over the given filesystem.
func NewDependencyService(fs adapter.ProjectFS) *DependencyService {
	return &DependencyService{
		fs:      fs,
		locator: NewLocator(fs),
		merger:  NewMerger(fs),
	}
}

// Add resolves the request, upserts the manifest entry, and maintains the
// environment file for local non-sibling dependencies.
func (s *DependencyService) Add(req AddRequest) (*AddResult, error) {
	if req.Tag != "" && req.Version != "" {
		return nil, ErrConflictingOptions
	}

	root, err := s.locator.Locate(req.Start)
	if err != nil {
		return nil, err
	}

	githubPath, urlTag := parseGitHubURL(req.Repo)

	repoPath := req.Repo
	if githubPath != "" {
		repoPath = githubPath
	}

	remote := githubPath != "" || s.looksLikeGitHubRepo(req.Repo)
	name := s.dependencyName(req.Repo, req.Name, githubPath)

	var entry m.DependencyEntry

	if remote {
		entry.GitHub = repoPath

		// A tag from the CLI takes precedence over one parsed from the URL.
		switch {
		case req.Tag != "":
			entry.Tag = req.Tag
		case urlTag != "":
			entry.Tag = urlTag
		case req.Version != "":
			entry.Version = req.Version
		}
	}

	result := &AddResult{Name: name, Root: root}

	manifestPath := ManifestPath(root)
	result.Before, _ = s.fs.ReadFile(manifestPath)

	result.After, err = s.merger.RenderUpsert(manifestPath, name, entry)
	if err != nil {
		return nil, err
	}

	if req.DryRun {
		result.Messages = append(result.Messages, fmt.Sprintf("Would add %q to %s", name, manifestPath))
		return result, nil
	}

	if err := s.fs.WriteFile(manifestPath, result.After, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", manifestPath, err)
	}

	result.Modified = append(result.Modified, manifestPath)
	result.Messages = append(result.Messages, fmt.Sprintf("Added %q to %s", name, manifestPath))

	if remote {
		return result, nil
	}

	// Local dependency: siblings resolve on their own, anything else needs an
	// environment entry.
	if s.merger.IsSibling(root, m.Path(req.Repo)) {
		result.Messages = append(result.Messages, fmt.Sprintf("%q is a sibling folder, no %s update needed", name, EnvironmentFileName))
		return result, nil
	}

	envPath, exists := s.merger.FindEnvironmentFile(root)
	if !exists {
		result.Messages = append(result.Messages, fmt.Sprintf("Creating new %s", envPath))
	}

	fileURL := s.merger.LocalFileURL(m.Path(req.Repo))

	if err := s.merger.MergeLocalReference(envPath, name, fileURL); err != nil {
		return nil, err
	}

	result.Modified = append(result.Modified, envPath)
	result.Messages = append(result.Messages, fmt.Sprintf("Added %q to %s", name, envPath))

	return result, nil
}

// parseGitHubURL extracts owner/repo and an optional release tag from a
// GitHub URL. Returns empty strings for anything else.
func parseGitHubURL(url string) (repo string, tag string) {
	match := githubURLRe.FindStringSubmatch(url)
	if match == nil {
		return "", ""
	}

	return match[1], match[2]
}

// looksLikeGitHubRepo reports whether repo is an owner/repo reference rather
// than a local path. An existing path always wins.
func (s *DependencyService) looksLikeGitHubRepo(repo string) bool {
	if _, err := s.fs.Stat(m.Path(repo)); err == nil {
		return false
	}

	if strings.HasPrefix(repo, "/") || strings.HasPrefix(repo, ".") {
		return false
	}

	return len(strings.Split(repo, "/")) == 2
}

// dependencyName derives the manifest key from the repo reference unless an
// override is given. Local folder names lose a .4dbase suffix.
func (s *DependencyService) dependencyName(repo, override, githubPath string) string {
	if override != "" {
		return override
	}

	if githubPath != "" {
		parts := strings.Split(githubPath, "/")
		return parts[len(parts)-1]
	}

	if s.looksLikeGitHubRepo(repo) {
		parts := strings.Split(repo, "/")
		return parts[len(parts)-1]
	}

	name := filepath.Base(repo)

	return strings.TrimSuffix(name, localBaseSuffix)
}
