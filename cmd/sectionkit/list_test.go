package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestListCommand_TableOutput(t *testing.T) {
	stdout, err := executeCommand(t, "list")
	require.NoError(t, err)

	require.Contains(t, stdout, "TYPE")
	require.Contains(t, stdout, "codeviewer")
	require.Contains(t, stdout, "gallery")
	require.Contains(t, stdout, "accordion")
	require.Contains(t, stdout, "navbar")
	require.Contains(t, stdout, "emailform")
	// Schema fields surface as YAML keys.
	require.Contains(t, stdout, "source")
	require.Contains(t, stdout, "line_numbers")
	// Buffer capture is non-TTY, expect the ASCII marker.
	require.Contains(t, stdout, "- codeviewer")
}

func TestListCommand_SortedByType(t *testing.T) {
	stdout, err := executeCommand(t, "list")
	require.NoError(t, err)

	accordion := bytes.Index([]byte(stdout), []byte("accordion"))
	navbar := bytes.Index([]byte(stdout), []byte("navbar"))
	require.Less(t, accordion, navbar)
}

func TestListCommand_JSONOutput(t *testing.T) {
	stdout, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))

	require.Equal(t, 5, payload.Count)
	require.Len(t, payload.Components, 5)
	require.Equal(t, "accordion", payload.Components[0].Type)
	for _, c := range payload.Components {
		require.NotEmpty(t, c.Name)
		require.NotEmpty(t, c.Version)
		require.NotEmpty(t, c.Description)
		require.NotEmpty(t, c.Fields)
	}
}

func TestSchemaFieldsSkipsUnexportedKeys(t *testing.T) {
	type sample struct {
		Source string `yaml:"source"`
		Flag   bool   `yaml:"flag,omitempty"`
		Hidden bool   `yaml:"-"`
		NoTag  string
	}

	require.Equal(t, []string{"source", "flag"}, schemaFields(sample{}))
	require.Equal(t, []string{"source", "flag"}, schemaFields(&sample{}))
	require.Nil(t, schemaFields(nil))
}
