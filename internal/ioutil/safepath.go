// Package ioutil holds jqnav's small filesystem-safety helpers, adapted
// from the teacher's notes-root escape guard (cmd/nnav/safeio.go): here it
// protects the CLI's -o/--output destination instead of a notes directory.
package ioutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SafeJoinWithin resolves userPath relative to base and rejects the result
// if it would land outside base, whether via ".." segments or a symlink
// escape. An absolute userPath is rejected outright.
func SafeJoinWithin(base, userPath string) (string, error) {
	clean := filepath.Clean(userPath)
	if filepath.IsAbs(clean) {
		return "", fmt.Errorf("ioutil: absolute paths not allowed")
	}
	joined := filepath.Join(base, clean)
	rel, err := filepath.Rel(base, joined)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("ioutil: path escapes base dir")
	}

	absBase, err := filepath.EvalSymlinks(base)
	if err != nil {
		return "", err
	}
	absJoined, err := filepath.EvalSymlinks(joined)
	if err != nil {
		// The output file may not exist yet; that's fine for a write target.
		absJoined = joined
	}
	baseWithSep := absBase + string(os.PathSeparator)
	joinedWithSep := absJoined + string(os.PathSeparator)
	if !strings.HasPrefix(joinedWithSep, baseWithSep) && absJoined != absBase {
		return "", fmt.Errorf("ioutil: symlink escape detected")
	}
	return absJoined, nil
}

// ResolveOutputPath guards a user-supplied file argument (the CLI's
// -o/--output flag, or the interactive :print/:yank commands' optional file
// parameter) against escaping the current working directory before it ever
// reaches WriteFileAtomic.
func ResolveOutputPath(userPath string) (string, error) {
	base, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return SafeJoinWithin(base, userPath)
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory followed by a rename, so a crash mid-write never leaves a
// truncated output file (the one-shot CLI's -o target, and the interactive
// print/yank commands' optional file argument).
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jqnav-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
