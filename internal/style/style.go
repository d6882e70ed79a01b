// Package style is jqnav's small lipgloss-based attribute model (spec
// §4.8's DOMAIN STACK: lipgloss wired beyond the teacher's title/cursor/
// muted styles into a reusable, plain-output-aware theme). Every style
// degrades to an identity render when stdout isn't a TTY or --plain is in
// effect, matching spec §6's "Styles degrade to plain output".
package style

import "github.com/charmbracelet/lipgloss"

// Theme is the small set of styles the renderer needs: a title line, the
// reverse-video cursor row, a muted status/footer line, and an accent used
// for search-match highlighting.
type Theme struct {
	Title  lipgloss.Style
	Cursor lipgloss.Style
	Muted  lipgloss.Style
	Match  lipgloss.Style

	plain bool
}

// Dark mirrors the teacher's look (bold title, reverse-video cursor, dim
// gray status line) with a search-match accent added.
func Dark() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Match:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

// Plain returns a Theme whose every Render call is the identity function,
// for non-TTY stdout or an explicit --plain flag.
func Plain() Theme {
	t := Theme{plain: true}
	t.Title = lipgloss.NewStyle()
	t.Cursor = lipgloss.NewStyle()
	t.Muted = lipgloss.NewStyle()
	t.Match = lipgloss.NewStyle()
	return t
}

func (t Theme) IsPlain() bool { return t.plain }
