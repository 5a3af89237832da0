package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

const (
	// ManifestFileName is the dependency manifest inside Project/Sources.
	ManifestFileName = "dependencies.json"
	// EnvironmentFileName maps dependency names to local filesystem
	// references; it may be shared across sibling projects.
	EnvironmentFileName = "environment4d.json"
	// localBaseSuffix marks a packaged 4D component folder.
	localBaseSuffix = ".4dbase"
)

// Merger performs read/modify/write cycles on the dependency manifest and the
// environment file. Untouched entries keep their keys, values, and file order
// through a rewrite (whitespace is normalized); new keys are appended. A
// manifest that cannot be parsed is never partially overwritten, the merger
// restarts from an explicit empty structure instead.
type Merger struct {
	fs adapter.ProjectFS
}

// NewMerger constructs a Merger over the given filesystem.
func NewMerger(fs adapter.ProjectFS) *Merger {
	return &Merger{fs: fs}
}

// ManifestPath returns the manifest location under a project root.
func ManifestPath(root m.Path) m.Path {
	return m.Path(filepath.Join(string(root), "Project", "Sources", ManifestFileName))
}

// UpsertDependency sets dependencies[name] to entry in the manifest at path,
// creating the file if needed. The version field is defaulted only when
// entirely absent; every other key is left untouched.
func (mg *Merger) UpsertDependency(path m.Path, name string, entry m.DependencyEntry) error {
	rendered, err := mg.RenderUpsert(path, name, entry)
	if err != nil {
		return err
	}

	if err := mg.fs.WriteFile(path, rendered, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// RenderUpsert produces the manifest bytes an upsert would write, without
// writing them. Used by the dry-run diff as well as the real write.
func (mg *Merger) RenderUpsert(path m.Path, name string, entry m.DependencyEntry) ([]byte, error) {
	doc := mg.readMapping(path)

	deps := newMapping()
	if raw, ok := doc.get("dependencies"); ok {
		// A malformed dependencies key is replaced wholesale rather than
		// partially merged.
		if parsed, err := decodeMapping(raw); err == nil {
			deps = parsed
		}
	}

	entryJSON, err := marshalEntry(entry)
	if err != nil {
		return nil, err
	}

	deps.set(name, entryJSON)
	doc.set("dependencies", deps.marshal())

	if !doc.has("version") {
		doc.set("version", json.RawMessage(fmt.Sprintf("%d", m.ManifestSchemaVersion)))
	}

	return renderDocument(doc)
}

// MergeLocalReference records a file:// URL for name in the environment file
// at path, preserving unrelated entries and ensuring both the dependencies
// and devDependencies mappings exist.
func (mg *Merger) MergeLocalReference(path m.Path, name string, fileURL string) error {
	doc := mg.readMapping(path)

	deps := newMapping()
	if raw, ok := doc.get("dependencies"); ok {
		if parsed, err := decodeMapping(raw); err == nil {
			deps = parsed
		}
	}

	urlJSON, err := json.Marshal(fileURL)
	if err != nil {
		return err
	}

	deps.set(name, urlJSON)
	doc.set("dependencies", deps.marshal())

	if !doc.has("devDependencies") {
		doc.set("devDependencies", json.RawMessage("{}"))
	}

	rendered, err := renderDocument(doc)
	if err != nil {
		return err
	}

	if err := mg.fs.WriteFile(path, rendered, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// FindEnvironmentFile walks upward from start looking for an existing
// environment file. When none exists it returns the location beside the
// project root's parent where one should be created, and false.
func (mg *Merger) FindEnvironmentFile(projectRoot m.Path) (m.Path, bool) {
	dir := string(projectRoot)

	for {
		candidate := filepath.Join(dir, EnvironmentFileName)
		if info, err := mg.fs.Stat(m.Path(candidate)); err == nil && !info.IsDir() {
			return m.Path(candidate), true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return m.Path(filepath.Join(filepath.Dir(string(projectRoot)), EnvironmentFileName)), false
}

// LocalFileURL builds the file:// reference for a local dependency. An
// existing .4dbase sibling is preferred, then a nested <base>/<base>.4dbase
// folder, falling back to the literal path.
func (mg *Merger) LocalFileURL(repoPath m.Path) string {
	abs, err := mg.fs.Abs(repoPath)
	if err != nil {
		abs = repoPath
	}

	if strings.HasSuffix(string(abs), localBaseSuffix) {
		return "file://" + string(abs)
	}

	sibling := m.Path(string(abs) + localBaseSuffix)
	if mg.isDir(sibling) {
		return "file://" + string(sibling)
	}

	base := filepath.Base(string(abs))

	nested := m.Path(filepath.Join(string(abs), base+localBaseSuffix))
	if mg.isDir(nested) {
		return "file://" + string(nested)
	}

	return "file://" + string(abs)
}

// IsSibling reports whether repoPath shares a parent directory with the
// project root. Sibling dependencies resolve without an environment entry.
func (mg *Merger) IsSibling(projectRoot, repoPath m.Path) bool {
	rootAbs, err := mg.fs.Abs(projectRoot)
	if err != nil {
		return false
	}

	repoAbs, err := mg.fs.Abs(repoPath)
	if err != nil {
		return false
	}

	return filepath.Dir(string(repoAbs)) == filepath.Dir(string(rootAbs))
}

// ReadSummary loads the manifest for reporting. A missing file yields an
// empty summary; a malformed one is reported as a diagnostic rather than an
// error.
func (mg *Merger) ReadSummary(root m.Path) m.DependencySummary {
	summary := m.DependencySummary{Dependencies: map[string]m.DependencyEntry{}}

	path := ManifestPath(root)
	content, err := mg.fs.ReadFile(path)
	if err != nil {
		return summary
	}

	summary.FileExists = true

	var doc struct {
		Dependencies map[string]m.DependencyEntry `json:"dependencies"`
	}

	if err := json.Unmarshal(content, &doc); err != nil {
		summary.Error = err.Error()
		return summary
	}

	if doc.Dependencies != nil {
		summary.Dependencies = doc.Dependencies
	}

	return summary
}

// readMapping loads path as an ordered mapping, starting from an explicit
// empty mapping when the file is absent or malformed.
func (mg *Merger) readMapping(path m.Path) *mapping {
	content, err := mg.fs.ReadFile(path)
	if err != nil {
		return newMapping()
	}

	doc, err := decodeMapping(content)
	if err != nil {
		return newMapping()
	}

	return doc
}

func (mg *Merger) isDir(path m.Path) bool {
	info, err := mg.fs.Stat(path)
	return err == nil && info.IsDir()
}

// marshalEntry renders a dependency entry; local entries become an explicit
// empty object.
func marshalEntry(entry m.DependencyEntry) (json.RawMessage, error) {
	if entry.IsLocal() {
		return json.RawMessage("{}"), nil
	}

	return json.Marshal(entry)
}

// mapping is a JSON object that remembers the order keys were first seen in.
// Setting an existing key replaces its value in place; new keys append.
type mapping struct {
	keys   []string
	values map[string]json.RawMessage
}

func newMapping() *mapping {
	return &mapping{values: map[string]json.RawMessage{}}
}

func (om *mapping) set(key string, value json.RawMessage) {
	if _, ok := om.values[key]; !ok {
		om.keys = append(om.keys, key)
	}

	om.values[key] = value
}

func (om *mapping) get(key string) (json.RawMessage, bool) {
	value, ok := om.values[key]
	return value, ok
}

func (om *mapping) has(key string) bool {
	_, ok := om.values[key]
	return ok
}

// marshal renders the object with keys in encounter order, preserving each
// value's raw bytes.
func (om *mapping) marshal() json.RawMessage {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, key := range om.keys {
		if i > 0 {
			sb.WriteByte(',')
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			continue
		}

		sb.Write(keyJSON)
		sb.WriteByte(':')
		sb.Write(om.values[key])
	}

	sb.WriteByte('}')

	return json.RawMessage(sb.String())
}

// decodeMapping parses a JSON object into an ordered mapping. The standard
// map decode would lose the file's key order, so the keys are walked with a
// token decoder instead.
func decodeMapping(content []byte) (*mapping, error) {
	dec := json.NewDecoder(bytes.NewReader(content))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}

	om := newMapping()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		om.set(key, value)
	}

	return om, nil
}

// renderDocument writes the whole structure back with stable, human-diffable
// formatting: tab indentation and a trailing newline. Key order is the
// mapping's encounter order throughout.
func renderDocument(doc *mapping) ([]byte, error) {
	var buf bytes.Buffer

	if err := json.Indent(&buf, doc.marshal(), "", "\t"); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
