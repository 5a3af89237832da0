package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetValidateFlags(t *testing.T) {
	t.Helper()

	resetRootFlags(t)

	validateSchemaFlag = ""

	t.Cleanup(func() { validateSchemaFlag = "" })
}

func writeFormFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "form.4DForm")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runValidate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newValidateCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"validate"}, args...))

	err := cmd.Execute()

	return output.String(), err
}

func TestValidateCmd_ValidForm(t *testing.T) {
	resetValidateFlags(t)

	form := writeFormFile(t, `{"pages": [null, {"objects": {"b": {"type": "button"}}}]}`)

	output, err := runValidate(t, form)
	require.NoError(t, err)
	assert.Contains(t, output, "is valid")
}

func TestValidateCmd_InvalidForm(t *testing.T) {
	resetValidateFlags(t)

	form := writeFormFile(t, `{"windowTitle": "no pages"}`)

	output, err := runValidate(t, form)
	require.Error(t, err)
	assert.Contains(t, output, "error(s):")
	assert.Contains(t, output, "pages")
}

func TestValidateCmd_MissingFile(t *testing.T) {
	resetValidateFlags(t)

	_, err := runValidate(t, filepath.Join(t.TempDir(), "nope.4DForm"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateCmd_CustomSchema(t *testing.T) {
	resetValidateFlags(t)

	schema := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(schema, []byte(`{"type": "object", "required": ["x"]}`), 0o600))

	form := writeFormFile(t, `{"y": 1}`)

	_, err := runValidate(t, form, "--schema", schema)
	require.Error(t, err)
}
