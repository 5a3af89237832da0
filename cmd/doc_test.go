package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDocFlags(t *testing.T) {
	t.Helper()

	resetRootFlags(t)

	docFetchFlag = false
	docMaxCharsFlag = 4000

	t.Cleanup(func() {
		docFetchFlag = false
		docMaxCharsFlag = 4000
	})
}

func runDoc(t *testing.T, args ...string) map[string]interface{} {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newDocCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"doc"}, args...))

	require.NoError(t, cmd.Execute())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &result))

	return result
}

func TestDocCmd_Class(t *testing.T) {
	resetDocFlags(t)

	result := runDoc(t, "Entity")

	assert.Equal(t, "Entity", result["query"])
	assert.Equal(t, "class", result["type"])
	assert.Equal(t, "https://developer.4d.com/docs/API/EntityClass", result["url"])
	assert.NotContains(t, result, "content")
}

func TestDocCmd_MultiWordCommand(t *testing.T) {
	resetDocFlags(t)

	result := runDoc(t, "OBJECT", "Get", "name")

	assert.Equal(t, "OBJECT Get name", result["query"])
	assert.Equal(t, "command", result["type"])
	assert.Equal(t, "https://developer.4d.com/docs/commands/object-get-name", result["url"])
}

func TestDocCmd_Topic(t *testing.T) {
	resetDocFlags(t)

	result := runDoc(t, "orda")

	assert.Equal(t, "topic", result["type"])
	assert.Equal(t, "https://developer.4d.com/docs/ORDA/overview", result["url"])
}

func TestDocCmd_RequiresQuery(t *testing.T) {
	resetDocFlags(t)

	cmd := newRootCmd()
	cmd.AddCommand(newDocCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"doc"})

	require.Error(t, cmd.Execute())
}
