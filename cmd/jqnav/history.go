package main

import (
	"os"
	"path/filepath"
	"strings"
)

const historyFileName = ".jqnav_history"

// loadHistoryFile reads the optional history file into a slice of lines,
// oldest first (spec §6's "Persisted state: ... A history file may
// optionally be read/written by the line editor when the host wires it
// up" — here cmd/jqnav is that host).
func loadHistoryFile() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(home, historyFileName))
	if err != nil {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// saveHistoryFile persists entries (oldest first) to the history file,
// with 0600 permissions matching the rest of jqnav's on-disk state.
func saveHistoryFile(entries []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	data := strings.Join(entries, "\n")
	if len(entries) > 0 {
		data += "\n"
	}
	return os.WriteFile(filepath.Join(home, historyFileName), []byte(data), 0o600)
}
