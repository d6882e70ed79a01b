package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/brianmcjilton/jqnav/internal/cmdline"
	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/lineedit"
	"github.com/brianmcjilton/jqnav/internal/nav"
	"github.com/brianmcjilton/jqnav/internal/search"
	"github.com/brianmcjilton/jqnav/internal/style"
)

// promptMode tags which (if any) line editor currently owns the keyboard,
// generalizing the teacher's single-mode model to the three prompts jqnav
// needs (spec §6's navigation-mode key table plus the "/", "?", ":" prompts).
type promptMode uint8

const (
	promptNone promptMode = iota
	promptSearchRecursive
	promptSearchQuery
	promptCommand
)

// model is jqnav's bubbletea state container, generalized from the
// teacher's tui.go model: where the teacher held a *Node tree and a single
// flattened Visible list, jqnav holds the full Navigation Engine state
// (internal/nav.State) and layers prompt handling and a help footer on top.
type model struct {
	nav    *nav.State
	disp   *cmdline.Dispatcher
	theme  style.Theme
	log    *zap.SugaredLogger
	indent int

	mode promptMode

	width, height int

	// pendingDigits accumulates a numeric prefix for "<n>g" (jump-to-nth-
	// child), cleared on any non-digit keypress (spec's "number then g").
	pendingDigits string

	// completionAnchor/completionIndex track an in-progress Tab-completion
	// cycle on the command line (spec §4.5): -1 means "not cycling". The
	// anchor is fixed to the start of the token under the cursor the first
	// time Tab is pressed, and cleared on any other keystroke.
	completionAnchor int
	completionIndex  int
}

const helpText = "j/k move • h/l collapse/expand • gg/G home/end • {/} sibling • zR/zM expand/collapse • / ? search • n/N match • : command • enter toggle • q quit"

func newModel(state *nav.State, disp *cmdline.Dispatcher, theme style.Theme, log *zap.SugaredLogger, indent int) model {
	return model{nav: state, disp: disp, theme: theme, log: log, indent: indent, completionAnchor: -1, completionIndex: -1}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case promptSearchRecursive, promptSearchQuery:
		return m.handleSearchPromptKey(msg)
	case promptCommand:
		return m.handleCommandPromptKey(msg)
	}
	return m.handleNavigationKey(msg)
}

// handleSearchPromptKey drives the search line editor through its
// keystroke contract (spec §4.4), applying the submitted pattern on Enter.
// All mode/state mutation happens on the single m this function returns,
// since model is a value type and a separately-copied helper would lose
// writes made through a bound method value on another copy.
func (m model) handleSearchPromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.nav.SearchEditor
	switch msg.Type {
	case tea.KeyEnter:
		line := ed.Submit()
		mode := m.mode
		m.mode = promptNone
		m.nav.Pattern = search.NewPattern(line)
		if mode == promptSearchQuery {
			m.nav.SearchMode = search.ModeQuery
		} else {
			m.nav.SearchMode = search.ModeRecursive
		}
		m.jumpToNextMatch()
		return m, nil
	case tea.KeyEsc, tea.KeyCtrlC:
		ed.Clear()
		m.mode = promptNone
		return m, nil
	}
	editLine(ed, msg)
	return m, nil
}

// handleCommandPromptKey is handleSearchPromptKey's counterpart for the
// ":" command line, dispatching the submitted line on Enter.
func (m model) handleCommandPromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.nav.CommandEditor
	switch msg.Type {
	case tea.KeyEnter:
		line := ed.Submit()
		m.mode = promptNone
		msg, err := m.disp.Dispatch(m.nav, line)
		if err != nil {
			m.nav.Message = "error: " + err.Error()
			if m.log != nil {
				m.log.Debugw("command error", "line", line, "err", err)
			}
			return m, nil
		}
		m.nav.Message = msg
		if m.disp.QuitAsked {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyEsc, tea.KeyCtrlC:
		ed.Clear()
		m.mode = promptNone
		return m, nil
	case tea.KeyTab:
		if m.completionAnchor == -1 {
			m.completionAnchor = tokenStart(ed.Text(), ed.Cursor())
			m.completionIndex = -1
		}
		m.completionIndex = ed.CompleteNext(m.completionAnchor, m.completionIndex)
		return m, nil
	}
	m.completionAnchor, m.completionIndex = -1, -1
	editLine(ed, msg)
	return m, nil
}

// tokenStart returns the rune index of the start of the whitespace-
// delimited token immediately before cursor in text, for Tab-completion's
// first press (spec §4.5: completion replaces "the token under the
// cursor").
func tokenStart(text string, cursor int) int {
	runes := []rune(text)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	i := cursor
	for i > 0 && runes[i-1] != ' ' {
		i--
	}
	return i
}

// editLine applies a non-submit, non-cancel keystroke to ed. It only ever
// touches the *lineedit.State pointer, never model fields, so it's safe to
// call regardless of which model copy is in scope.
func editLine(ed *lineedit.State, msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace:
		ed.Backspace()
	case tea.KeyDelete:
		ed.DeleteForward()
	case tea.KeyLeft:
		ed.MoveLeft()
	case tea.KeyRight:
		ed.MoveRight()
	case tea.KeyHome, tea.KeyCtrlA:
		ed.Home()
	case tea.KeyEnd, tea.KeyCtrlE:
		ed.End()
	case tea.KeyCtrlK:
		ed.KillToEnd()
	case tea.KeyCtrlU:
		ed.KillToStart()
	case tea.KeyCtrlW:
		ed.KillWordBack()
	case tea.KeyUp, tea.KeyCtrlP:
		ed.Prev()
	case tea.KeyDown, tea.KeyCtrlN:
		ed.Next()
	case tea.KeyCtrlR:
		ed.Prev() // minimum-viable incremental search, per spec §4.4
	case tea.KeyRunes:
		ed.InsertString(string(msg.Runes))
	case tea.KeySpace:
		ed.Insert(' ')
	}
}

// handleNavigationKey dispatches a single keystroke in navigation mode
// (spec §6's key table). Two two-key sequences need a pending prefix
// remembered across calls: a digit run terminated by "g" (jump_nth_child)
// and "gg" (jump_home), and "z" followed by "R" or "M" (expand_recursive /
// collapse_all).
func (m model) handleNavigationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	pending := m.pendingDigits
	m.pendingDigits = ""

	switch {
	case pending == "z" && key == "R":
		_ = m.nav.ExpandRecursive()
		return m.afterNav(), nil
	case pending == "z" && key == "M":
		m.nav.CollapseAll()
		return m.afterNav(), nil
	case key == "g" && pending == "g":
		m.nav.JumpHome()
		return m.afterNav(), nil
	case key == "g" && pending != "" && isDigits(pending):
		n, _ := strconv.Atoi(pending)
		m.nav.JumpNthChild(n)
		return m.afterNav(), nil
	case isDigits(key) && (pending == "" || isDigits(pending)):
		m.pendingDigits = pending + key
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "ctrl+c":
		m.nav.Message = ""
	case "j", "down":
		m.nav.Move(1)
	case "k", "up":
		m.nav.Move(-1)
	case "h", "left":
		// h collapses an expanded container under the cursor; on a
		// collapsed container or a leaf it jumps to the parent row instead.
		cur := m.nav.Current()
		if !cur.IsFlatRow && cur.Value.IsContainer() && m.nav.Expanded.Contains(cur.Value.ID()) {
			_ = m.nav.ToggleExpand()
		} else {
			m.nav.JumpParent(false)
		}
	case "l", "right":
		_ = m.nav.ToggleExpand()
	case "g":
		m.pendingDigits = "g"
	case "G":
		m.nav.JumpEnd()
	case "{":
		m.nav.JumpPrevSibling()
	case "}":
		m.nav.JumpNextSibling()
	case "z":
		m.pendingDigits = "z"
	case "enter":
		_ = m.nav.ToggleExpand()
	case "/":
		m.mode = promptSearchRecursive
		m.nav.SearchEditor.Clear()
	case "?":
		m.mode = promptSearchQuery
		m.nav.SearchEditor.Clear()
	case ":":
		m.mode = promptCommand
		m.nav.CommandEditor.Clear()
		m.completionAnchor, m.completionIndex = -1, -1
	case "n":
		m.jumpToNextMatch()
	case "N":
		m.jumpToPrevMatch()
	}

	return m.afterNav(), nil
}

// afterNav applies any rebuild a navigation op requested before the View
// renders the next frame.
func (m model) afterNav() model {
	if m.nav.NeedsRebuild {
		m.nav.Rebuild()
	}
	return m
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m *model) jumpToNextMatch() {
	if m.nav.Pattern == nil {
		return
	}
	matches := search.AllMatches(m.nav.Ctx, m.nav.Root, m.nav.Pattern, m.nav.SearchMode, m.nav.SearchQueryPath)
	target, ok := search.Next(matches, m.nav.LastMatchPath)
	if !ok {
		m.nav.Message = "no match"
		return
	}
	m.nav.LastMatchPath = target
	m.nav.NavigateToPath(target)
	m.nav.Rebuild()
}

func (m *model) jumpToPrevMatch() {
	if m.nav.Pattern == nil {
		return
	}
	matches := search.AllMatches(m.nav.Ctx, m.nav.Root, m.nav.Pattern, m.nav.SearchMode, m.nav.SearchQueryPath)
	target, ok := search.Prev(matches, m.nav.LastMatchPath)
	if !ok {
		m.nav.Message = "no match"
		return
	}
	m.nav.LastMatchPath = target
	m.nav.NavigateToPath(target)
	m.nav.Rebuild()
}

// scrollToCursor keeps the cursor row within the visible window, mirroring
// the teacher's adjustScroll: scroll up or down just enough to bring the
// cursor back into view, never re-centering gratuitously. It mutates
// m.nav.Scroll through the shared *nav.State pointer, which is safe from a
// value-receiver method since every model copy shares the same nav pointer.
func (m model) scrollToCursor(usable int) {
	if m.nav.Cursor < m.nav.Scroll {
		m.nav.Scroll = m.nav.Cursor
	}
	if m.nav.Cursor >= m.nav.Scroll+usable {
		m.nav.Scroll = m.nav.Cursor - usable + 1
	}
	if m.nav.Scroll < 0 {
		m.nav.Scroll = 0
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("jqnav"))
	b.WriteString("\n\n")

	usable := m.height - 4
	if usable < 1 {
		usable = len(m.nav.Items)
	}
	m.scrollToCursor(usable)
	end := m.nav.Scroll + usable
	if end > len(m.nav.Items) {
		end = len(m.nav.Items)
	}
	for i := m.nav.Scroll; i < end; i++ {
		line := renderItem(m.nav, i)
		if i == m.nav.Cursor {
			line = m.theme.Cursor.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	switch m.mode {
	case promptSearchRecursive:
		b.WriteString(m.nav.SearchEditor.Render("/"))
	case promptSearchQuery:
		b.WriteString(m.nav.SearchEditor.Render("?"))
	case promptCommand:
		b.WriteString(m.nav.CommandEditor.Render(":"))
	default:
		status := m.nav.Message
		if status == "" {
			status = helpText
		}
		b.WriteString(m.theme.Muted.Render(status))
	}
	b.WriteByte('\n')
	return b.String()
}

func renderItem(state *nav.State, i int) string {
	it := state.Items[i]
	indent := strings.Repeat("  ", it.Depth)
	if it.IsFlatRow {
		parts := make([]string, len(it.FlatValues))
		for j, v := range it.FlatValues {
			parts[j] = fmt.Sprintf("[%d]=%s", it.FlatFirstIndex+j, shortValue(v))
		}
		return indent + strings.Join(parts, "  ")
	}

	prefix := ""
	switch it.ParentKind {
	case nav.ParentObject:
		prefix = it.Key + ": "
	case nav.ParentArray:
		prefix = fmt.Sprintf("[%d] ", it.Index)
	}

	glyph := "  "
	if it.Value.IsContainer() {
		if state.Expanded.Contains(it.Value.ID()) {
			glyph = "v "
		} else {
			glyph = "> "
		}
	}
	return indent + glyph + prefix + shortValue(it.Value)
}

func shortValue(v jvalue.Value) string {
	switch v.Kind() {
	case jvalue.KindArray:
		return fmt.Sprintf("[%d items]", v.Len())
	case jvalue.KindObject:
		return fmt.Sprintf("{%d keys}", v.Len())
	case jvalue.KindString:
		return strconv.Quote(v.StringAtom().Text())
	default:
		return string(jvalue.PrettyPrint(nil, v, 0))
	}
}
