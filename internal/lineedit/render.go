package lineedit

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Render returns the line prefixed by prompt, followed by the escape
// sequence that repositions the terminal cursor over the buffer's logical
// cursor position (spec §4.4 "Redisplay": "the editor must reposition the
// hardware cursor to match the logical one after every edit").
//
// displayWidth accounts for the (rare) case of multi-byte runes that still
// occupy a single terminal cell; jqnav doesn't attempt full East-Asian
// width accounting (out of scope), just codepoint counting, per spec.
func (s *State) Render(prompt string) string {
	var b strings.Builder
	b.WriteString(ansi.EraseEntireLine)
	b.WriteByte('\r')
	b.WriteString(prompt)
	b.WriteString(string(s.buf))

	col := displayWidth(prompt) + displayWidth(string(s.buf[:s.cursor]))
	b.WriteByte('\r')
	if col > 0 {
		b.WriteString(ansi.CursorForward(col))
	}
	return b.String()
}

// displayWidth counts codepoints, not bytes (spec's "display width is
// measured in codepoints, not bytes, so multi-byte UTF-8 sequences don't
// throw off cursor placement").
func displayWidth(s string) int {
	return utf8.RuneCountInString(s)
}
