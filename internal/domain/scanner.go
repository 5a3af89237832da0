package domain

import (
	"context"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

// ScanArgs parameterizes one project scan.
type ScanArgs struct {
	// Start is where root location begins.
	Start m.Path
	// Exclude filters source files by root-relative glob patterns.
	Exclude []string
	// Parallel bounds concurrent per-file extraction.
	Parallel int
}

// Scanner ties root location, tree walking, manifest reading, and report
// assembly into the one flow behind `fourd info`. No file is read before the
// root resolves.
type Scanner struct {
	fs      adapter.ProjectFS
	locator *Locator
	walker  *Walker
	merger  *Merger
}

// NewScanner wires a Scanner over the given filesystem.
func NewScanner(fs adapter.ProjectFS) *Scanner {
	return &Scanner{
		fs:      fs,
		locator: NewLocator(fs),
		walker:  NewWalker(fs),
		merger:  NewMerger(fs),
	}
}

// Scan resolves the root from args.Start and assembles the full report.
func (s *Scanner) Scan(ctx context.Context, args ScanArgs) (*m.ProjectReport, error) {
	root, err := s.locator.Locate(args.Start)
	if err != nil {
		return nil, err
	}

	walk, err := s.walker.Walk(ctx, root, WalkOptions{
		Exclude:  args.Exclude,
		Parallel: args.Parallel,
	})
	if err != nil {
		return nil, err
	}

	report := AssembleReport(
		root,
		walk,
		s.merger.ReadSummary(root),
		ReadSettings(s.fs, root),
		HasCatalog(s.fs, root),
	)

	return &report, nil
}
