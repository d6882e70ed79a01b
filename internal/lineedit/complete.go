package lineedit

// Completer is implemented by whatever owns the completion vocabulary for a
// given line editor instance (the Command Dispatcher for the command line,
// spec §4.5's "remaining-parameter completion"). line is the full buffer
// text and cursor is the rune offset within it; implementations return the
// list of candidate completions for the token under the cursor.
type Completer interface {
	Complete(line string, cursor int) []string
}

// CompleteNext replaces the token under the cursor with the next candidate
// from Completer, cycling back to the first after the last (spec's "Tab
// cycles through candidates without closing the line"). It is a no-op if no
// Completer is set or no candidates are returned.
func (s *State) CompleteNext(lastPrefixStart, lastCandidateIndex int) (newCandidateIndex int) {
	if s.Completer == nil {
		return 0
	}
	candidates := s.Completer.Complete(s.Text(), s.cursor)
	if len(candidates) == 0 {
		return 0
	}
	idx := (lastCandidateIndex + 1) % len(candidates)
	replacement := candidates[idx]

	prefixEnd := s.cursor
	buf := make([]rune, 0, len(s.buf))
	buf = append(buf, s.buf[:lastPrefixStart]...)
	buf = append(buf, []rune(replacement)...)
	buf = append(buf, s.buf[prefixEnd:]...)
	s.buf = buf
	s.cursor = lastPrefixStart + len([]rune(replacement))
	return idx
}
