package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

// methodFileExt is the extension of 4D method and class source files.
const methodFileExt = ".4dm"

// formFileName is the JSON descriptor inside each form folder.
const formFileName = "form.4DForm"

// WalkResult groups the artifacts discovered under Project/Sources, each list
// sorted lexicographically by name.
type WalkResult struct {
	Methods         []m.MethodSymbol
	Classes         []m.ClassSymbol
	DatabaseMethods []string
	Forms           []m.FormDescriptor
}

// WalkOptions tunes a source tree walk.
type WalkOptions struct {
	// Exclude filters out files whose root-relative path matches any of the
	// glob patterns before extraction.
	Exclude []string

	// Parallel bounds the number of concurrent per-file extractions. Values
	// below 1 mean sequential.
	Parallel int
}

// Walker enumerates candidate source files under a resolved root and feeds
// them to the extractor. Any category folder absent from the tree yields an
// empty result for that category.
type Walker struct {
	fs adapter.ProjectFS
}

// NewWalker constructs a Walker over the given filesystem.
func NewWalker(fs adapter.ProjectFS) *Walker {
	return &Walker{fs: fs}
}

// Walk scans root's Project/Sources tree and returns the structured inventory.
func (w *Walker) Walk(ctx context.Context, root m.Path, opts WalkOptions) (*WalkResult, error) {
	excludes, err := compileExcludes(opts.Exclude)
	if err != nil {
		return nil, err
	}

	sources := filepath.Join(string(root), "Project", "Sources")
	result := &WalkResult{
		Methods:         []m.MethodSymbol{},
		Classes:         []m.ClassSymbol{},
		DatabaseMethods: []string{},
		Forms:           []m.FormDescriptor{},
	}

	methodFiles := w.methodFilesIn(m.Path(filepath.Join(sources, "Methods")), root, excludes)
	classFiles := w.methodFilesIn(m.Path(filepath.Join(sources, "Classes")), root, excludes)

	result.Methods, result.Classes = w.extractAll(ctx, methodFiles, classFiles, opts.Parallel)

	result.DatabaseMethods = w.databaseMethods(m.Path(filepath.Join(sources, "DatabaseMethods")), root, excludes)
	result.Forms = w.forms(m.Path(filepath.Join(sources, "Forms")))

	return result, nil
}

// extractAll runs the per-file extraction, optionally on a bounded errgroup.
// Each file's result is independent; ordering is re-imposed by sorting once
// all extractions finish.
func (w *Walker) extractAll(ctx context.Context, methodFiles, classFiles []m.Path, parallel int) ([]m.MethodSymbol, []m.ClassSymbol) {
	methods := make([]m.MethodSymbol, len(methodFiles))
	classes := make([]m.ClassSymbol, len(classFiles))

	group, _ := errgroup.WithContext(ctx)
	if parallel < 1 {
		parallel = 1
	}

	group.SetLimit(parallel)

	var mu sync.Mutex

	for i, path := range methodFiles {
		i, path := i, path
		group.Go(func() error {
			symbol := ExtractMethod(stem(path), w.readText(path))

			mu.Lock()
			methods[i] = symbol
			mu.Unlock()

			return nil
		})
	}

	for i, path := range classFiles {
		i, path := i, path
		group.Go(func() error {
			symbol := ExtractClass(stem(path), w.readText(path))

			mu.Lock()
			classes[i] = symbol
			mu.Unlock()

			return nil
		})
	}

	// Extraction never returns errors; degraded files yield zero-line symbols.
	_ = group.Wait()

	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })
	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })

	return methods, classes
}

// methodFilesIn lists the method-suffixed files directly inside dir, sorted.
func (w *Walker) methodFilesIn(dir m.Path, root m.Path, excludes []glob.Glob) []m.Path {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []m.Path

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), methodFileExt) {
			continue
		}

		path := m.Path(filepath.Join(string(dir), entry.Name()))
		if excluded(path, root, excludes) {
			continue
		}

		files = append(files, path)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files
}

// databaseMethods collects the stems of method files anywhere under dir.
// Database methods are listed by name only, with no parsing.
func (w *Walker) databaseMethods(dir m.Path, root m.Path, excludes []glob.Glob) []string {
	names := []string{}

	if _, err := w.fs.Stat(dir); err != nil {
		return names
	}

	_ = w.fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), methodFileExt) {
			return nil
		}

		if excluded(m.Path(path), root, excludes) {
			return nil
		}

		names = append(names, stem(m.Path(path)))

		return nil
	})

	sort.Strings(names)

	return names
}

// forms treats every immediate subdirectory of the Forms folder as one form
// descriptor.
func (w *Walker) forms(dir m.Path) []m.FormDescriptor {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return []m.FormDescriptor{}
	}

	forms := []m.FormDescriptor{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		formDir := m.Path(filepath.Join(string(dir), entry.Name()))
		forms = append(forms, w.describeForm(entry.Name(), formDir))
	}

	sort.Slice(forms, func(i, j int) bool { return forms[i].Name < forms[j].Name })

	return forms
}

// describeForm parses the form file just far enough to count top-level pages
// (array or mapping) and records the method files directly inside the folder.
// Parse failures leave the page count unset and are reported as a per-form
// diagnostic instead of aborting the scan.
func (w *Walker) describeForm(name string, formDir m.Path) m.FormDescriptor {
	descriptor := m.FormDescriptor{Name: name}

	formPath := m.Path(filepath.Join(string(formDir), formFileName))
	if _, err := w.fs.Stat(formPath); err == nil {
		descriptor.HasFormFile = true

		if pages, err := countFormPages(w.fs, formPath); err != nil {
			descriptor.Error = err.Error()
		} else {
			descriptor.Pages = &pages
		}
	}

	entries, err := w.fs.ReadDir(formDir)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), methodFileExt) {
				descriptor.Methods = append(descriptor.Methods, stem(m.Path(entry.Name())))
			}
		}

		sort.Strings(descriptor.Methods)
	}

	return descriptor
}

// countFormPages reads only the top-level pages field, supporting both the
// array and the mapping representation.
func countFormPages(fs adapter.ProjectFS, path m.Path) (int, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var doc struct {
		Pages json.RawMessage `json:"pages"`
	}

	if err := json.Unmarshal(content, &doc); err != nil {
		return 0, fmt.Errorf("invalid JSON in %s: %w", filepath.Base(string(path)), err)
	}

	if len(doc.Pages) == 0 {
		return 0, nil
	}

	var asArray []json.RawMessage
	if err := json.Unmarshal(doc.Pages, &asArray); err == nil {
		return len(asArray), nil
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(doc.Pages, &asMap); err == nil {
		return len(asMap), nil
	}

	return 0, nil
}

// readText loads a file as text; unreadable files degrade to empty text so
// the extractor yields a zero-line symbol instead of failing the scan.
func (w *Walker) readText(path m.Path) string {
	content, err := w.fs.ReadFile(path)
	if err != nil {
		return ""
	}

	return string(content)
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func excluded(path m.Path, root m.Path, excludes []glob.Glob) bool {
	rel, err := filepath.Rel(string(root), string(path))
	if err != nil {
		rel = string(path)
	}

	rel = filepath.ToSlash(rel)

	for _, g := range excludes {
		if g.Match(rel) {
			return true
		}
	}

	return false
}

// stem returns the filename without its extension.
func stem(path m.Path) string {
	base := filepath.Base(string(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
