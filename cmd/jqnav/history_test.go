package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHistoryFile_AbsentReturnsNil(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.Nil(t, loadHistoryFile())
}

func TestSaveAndLoadHistoryFile_RoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	entries := []string{"first", "second", "third"}
	require.NoError(t, saveHistoryFile(entries))

	got := loadHistoryFile()
	assert.Equal(t, entries, got)
}

func TestSaveHistoryFile_EmptyEntriesWritesEmptyFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, saveHistoryFile(nil))
	assert.Nil(t, loadHistoryFile())
}
