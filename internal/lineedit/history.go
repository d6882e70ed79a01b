package lineedit

// History is a capped, append-only ring of previously submitted lines, with
// adjacent-duplicate suppression (spec §4.4 "History"): submitting the same
// text as the most recent entry doesn't grow the list.
type History struct {
	entries []string
	cap     int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{cap: capacity}
}

// Push appends text to the history, dropping the oldest entry if the cap is
// exceeded, and ignoring empty or duplicate-of-last-entry submissions.
func (h *History) Push(text string) {
	if text == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == text {
		return
	}
	h.entries = append(h.entries, text)
	if len(h.entries) > h.cap {
		h.entries = h.entries[len(h.entries)-h.cap:]
	}
}

func (h *History) Len() int { return len(h.entries) }

// At returns the entry at index i (0 = oldest), and whether i was in range.
func (h *History) At(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}

// Entries returns the full history, oldest first, for persistence to a
// history file.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Load replaces the history with entries (oldest first), truncating to the
// cap if necessary (used when restoring a saved history file at startup).
func (h *History) Load(entries []string) {
	if len(entries) > h.cap {
		entries = entries[len(entries)-h.cap:]
	}
	h.entries = append([]string(nil), entries...)
}

// Prev moves the browse cursor one step into the past relative to the
// current buffer, stashing the in-progress line the first time it's called
// so Next can restore it after browsing back to "now".
func (s *State) Prev() {
	if s.hist.Len() == 0 {
		return
	}
	if s.histIndex == -1 {
		s.stashed = s.Text()
		s.histIndex = s.hist.Len()
	}
	if s.histIndex == 0 {
		return
	}
	s.histIndex--
	text, _ := s.hist.At(s.histIndex)
	s.SetText(text)
}

// Next moves the browse cursor one step toward the present, restoring the
// stashed in-progress line once it reaches the end.
func (s *State) Next() {
	if s.histIndex == -1 {
		return
	}
	s.histIndex++
	if s.histIndex >= s.hist.Len() {
		s.histIndex = -1
		s.SetText(s.stashed)
		return
	}
	text, _ := s.hist.At(s.histIndex)
	s.SetText(text)
}

// Submit records the current text in history and resets history browsing.
func (s *State) Submit() string {
	text := s.Text()
	s.hist.Push(text)
	s.histIndex = -1
	s.stashed = ""
	return text
}

// Hist exposes the underlying History for persistence (loading/saving a
// history file at process start/exit).
func (s *State) Hist() *History { return s.hist }
