// Package model defines the data structures shared across the fourd toolchain.
package model

// Path represents a file system path.
type Path string

// SourceKind categorizes a 4D source file by the folder it was found in.
type SourceKind string

const (
	// KindMethod represents a project method under Project/Sources/Methods.
	KindMethod SourceKind = "method"
	// KindClass represents a class file under Project/Sources/Classes.
	KindClass SourceKind = "class"
	// KindDatabaseMethod represents a file under Project/Sources/DatabaseMethods.
	KindDatabaseMethod SourceKind = "database-method"
	// KindForm represents a form folder under Project/Sources/Forms.
	KindForm SourceKind = "form"
)

// SourceFile is one candidate file discovered by the walker. Identity is the
// path; the kind records which category folder it came from.
type SourceFile struct {
	Path Path
	Kind SourceKind
}

// MethodSymbol carries the facts extracted from a method file. Method bodies
// are scanned for line-count metrics only.
type MethodSymbol struct {
	Name  string `json:"name"`
	Lines int    `json:"lines"`
}

// FunctionModifiers records the optional keywords in front of a Function
// declaration.
type FunctionModifiers struct {
	Exposed bool `json:"exposed,omitempty"`
	Shared  bool `json:"shared,omitempty"`
}

// FunctionDecl is one recognized Function declaration inside a class file.
type FunctionDecl struct {
	Modifiers FunctionModifiers `json:"modifiers"`
	Name      string            `json:"name"`
}

// ClassSymbol is built incrementally while scanning a class file line by line.
// Properties and functions keep insertion order and are not deduplicated.
type ClassSymbol struct {
	Name       string         `json:"name"`
	Lines      int            `json:"lines"`
	Properties []string       `json:"properties"`
	Functions  []FunctionDecl `json:"functions"`
	Extends    string         `json:"extends,omitempty"`
}

// FormDescriptor describes one form folder: its form.4DForm file (if any) and
// the method files directly inside the folder. Pages is nil when the form file
// is absent or cannot be parsed.
type FormDescriptor struct {
	Name        string   `json:"name"`
	HasFormFile bool     `json:"has_form_file"`
	Pages       *int     `json:"pages,omitempty"`
	Methods     []string `json:"methods,omitempty"`
	Error       string   `json:"error,omitempty"`
}
