package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRunOneShot_DefaultPrintsWholeDocument(t *testing.T) {
	path := writeTempJSON(t, `{"name":"alice","age":30}`)

	out := captureStdout(t, func() {
		err := runOneShot(path, cliFlags{})
		require.NoError(t, err)
	})
	assert.Contains(t, out, "alice")
}

func TestRunOneShot_QueryExtractsField(t *testing.T) {
	path := writeTempJSON(t, `{"name":"alice","age":30}`)

	out := captureStdout(t, func() {
		err := runOneShot(path, cliFlags{queries: []string{"name"}})
		require.NoError(t, err)
	})
	assert.Contains(t, out, "alice")
}

func TestRunOneShot_WritesToOutputFile(t *testing.T) {
	in := writeTempJSON(t, `{"a":1}`)
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	err = runOneShot(in, cliFlags{output: "out.json"})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "\"a\"")
}

func TestRunOneShot_UnparsableInputErrors(t *testing.T) {
	path := writeTempJSON(t, `not json at all`)
	err := runOneShot(path, cliFlags{})
	assert.Error(t, err)
}

func TestRootCmd_RejectsOutOfRangeIndent(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--indent", "999"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errArgParse)
}
