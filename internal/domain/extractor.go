package domain

import (
	"regexp"
	"strings"

	m "github.com/e-marchand/fourd/internal/model"
)

// Line-level declaration patterns. The source format is line-oriented by
// convention, so each line is tested independently; anything that matches no
// pattern is ignored.
var (
	classExtendsRe = regexp.MustCompile(`(?i)^Class\s+extends\s+(.+)$`)
	propertyRe     = regexp.MustCompile(`(?i)^property\s+(.+)$`)
	functionRe     = regexp.MustCompile(`(?i)^((?:exposed\s+|shared\s+)*)Function\s+(\w[\w.]*)`)
)

// ExtractClass scans class file text and collects the recognized declarations:
// the inheritance clause (last occurrence wins), property declarations, and
// Function declarations with their optional exposed/shared modifiers. It never
// fails on unrecognized syntax.
func ExtractClass(name string, text string) m.ClassSymbol {
	symbol := m.ClassSymbol{
		Name:       name,
		Properties: []string{},
		Functions:  []m.FunctionDecl{},
	}

	if text == "" {
		return symbol
	}

	lines := splitLines(text)
	symbol.Lines = len(lines)

	for _, line := range lines {
		stripped := strings.TrimSpace(line)

		if match := classExtendsRe.FindStringSubmatch(stripped); match != nil {
			symbol.Extends = strings.TrimSpace(match[1])
			continue
		}

		if match := propertyRe.FindStringSubmatch(stripped); match != nil {
			symbol.Properties = append(symbol.Properties, strings.TrimSpace(match[1]))
			continue
		}

		if match := functionRe.FindStringSubmatch(stripped); match != nil {
			symbol.Functions = append(symbol.Functions, m.FunctionDecl{
				Modifiers: parseModifiers(match[1]),
				Name:      match[2],
			})
		}
	}

	return symbol
}

// ExtractMethod yields the line count of a method file. Method bodies carry no
// class header syntax, so no declaration parsing happens here.
func ExtractMethod(name string, text string) m.MethodSymbol {
	symbol := m.MethodSymbol{Name: name}
	if text != "" {
		symbol.Lines = len(splitLines(text))
	}

	return symbol
}

func parseModifiers(prefix string) m.FunctionModifiers {
	var mods m.FunctionModifiers

	for _, word := range strings.Fields(prefix) {
		switch strings.ToLower(word) {
		case "exposed":
			mods.Exposed = true
		case "shared":
			mods.Shared = true
		}
	}

	return mods
}

// splitLines mirrors the splitlines semantics the report line counts are
// defined over: a trailing newline does not produce an empty final line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
