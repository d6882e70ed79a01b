package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brianmcjilton/jqnav/internal/applog"
	"github.com/brianmcjilton/jqnav/internal/cmdline"
	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/nav"
	"github.com/brianmcjilton/jqnav/internal/style"
)

// runInteractive launches jqnav's terminal UI (spec §6's "interactive
// mode"): parse the document, load the rc file and history, build the
// Navigation Engine and Command Dispatcher, and hand off to bubbletea.
// bubbletea owns raw-mode entry/exit itself (spec §5's "Terminal resource"
// is restored on every exit path, including a crash, by tea.Program's
// deferred terminal restore), matching the teacher's tea.NewProgram usage
// in cmd/nnav/tui.go.
func runInteractive(path string, flags cliFlags) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	ctx := jvalue.NewContext()
	root, err := ctx.Parse(data, jvalue.Flags{
		Braceless:     flags.braceless,
		NDJSON:        flags.ndjson,
		InternObjects: flags.intern,
	})
	if err != nil {
		return err
	}

	rc, err := loadRCFile()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "jqnav: warning: rc file:", err)
	}

	indent := flags.indent
	if indent == 0 {
		indent = rc.Indent
	}

	log, err := applog.New(flags.logFile)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	theme := style.Dark()
	if flags.plain || !isTTY(os.Stdout) {
		theme = style.Plain()
	}

	state := nav.NewState(ctx, root)
	state.SearchEditor.Hist().Load(loadHistoryFile())
	state.CommandEditor.Hist().Load(nil)

	disp := cmdline.NewDispatcher()
	state.CommandEditor.Completer = dispatcherCompleter{disp: disp}

	m := newModel(state, disp, theme, log, indent)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(model); ok {
		if saveErr := saveHistoryFile(fm.nav.SearchEditor.Hist().Entries()); saveErr != nil {
			log.Warnw("failed to save history", "err", saveErr)
		}
	}
	return nil
}

// isTTY reports whether f is a character device, the same heuristic the
// teacher uses to decide whether to emit styled output.
func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
