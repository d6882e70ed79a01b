// Package jqnaverr collects the sentinel errors shared across jqnav's core
// packages, so callers can errors.Is against a stable value while still
// formatting a human-readable status message (spec §7's error taxonomy:
// Parse, Evaluation, Command, I/O, Fatal).
package jqnaverr

import "errors"

var (
	// ErrNotContainer is returned by Focus when the cursor isn't on a
	// container.
	ErrNotContainer = errors.New("not a container")
	// ErrEmptyFocusStack is returned by Unfocus at the top of the focus
	// stack.
	ErrEmptyFocusStack = errors.New("already at top")
	// ErrNoMatch is returned by search cycling when there are no matches.
	ErrNoMatch = errors.New("no match")
	// ErrCommandUnknown is returned by the dispatcher for an unrecognized
	// command name.
	ErrCommandUnknown = errors.New("unknown command")
	// ErrArgMissing is returned when a mandatory command argument wasn't
	// supplied.
	ErrArgMissing = errors.New("missing mandatory argument")
	// ErrArgExtra is returned when a command line has leftover tokens that
	// don't match any parameter.
	ErrArgExtra = errors.New("unexpected extra argument")
)
