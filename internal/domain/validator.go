package domain

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/e-marchand/fourd/internal/adapter"
	m "github.com/e-marchand/fourd/internal/model"
)

//go:embed assets/formsSchema.json
var bundledFormSchema []byte

// FormValidator checks form files against the form JSON schema using a
// standard JSON-Schema engine.
type FormValidator struct {
	fs adapter.ProjectFS
}

// NewFormValidator constructs a FormValidator over the given filesystem.
func NewFormValidator(fs adapter.ProjectFS) *FormValidator {
	return &FormValidator{fs: fs}
}

// Validate checks the form at formPath against the schema at schemaPath, or
// the bundled schema when schemaPath is empty. Returns every violation with
// its instance path; an empty slice means the form is valid.
func (v *FormValidator) Validate(formPath m.Path, schemaPath m.Path) ([]string, error) {
	formData, err := v.fs.ReadFile(formPath)
	if err != nil {
		return nil, fmt.Errorf("form file not found: %s", formPath)
	}

	var instance interface{}
	if err := json.Unmarshal(formData, &instance); err != nil {
		return nil, fmt.Errorf("invalid JSON in form file: %w", err)
	}

	schemaData := bundledFormSchema

	if schemaPath != "" {
		schemaData, err = v.fs.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("schema file not found: %s", schemaPath)
		}
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("formsSchema.json", bytes.NewReader(schemaData)); err != nil {
		return nil, fmt.Errorf("invalid JSON in schema file: %w", err)
	}

	schema, err := compiler.Compile("formsSchema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	err = schema.Validate(instance)
	if err == nil {
		return []string{}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, err
	}

	var violations []string

	for _, cause := range validationErr.BasicOutput().Errors {
		if cause.Error == "" || cause.KeywordLocation == "" {
			continue
		}

		location := cause.InstanceLocation
		if location == "" {
			location = "root"
		}

		violations = append(violations, fmt.Sprintf("%s: %s", location, cause.Error))
	}

	return violations, nil
}
