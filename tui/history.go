package tui

// History keeps the player's typed command lines so the arrow keys can
// recall them, oldest line evicted first once the buffer fills.
type History struct {
	lines  []string
	limit  int
	cursor int // -1 while not recalling
}

func NewHistory(limit int) *History {
	return &History{lines: make([]string, 0, limit), limit: limit, cursor: -1}
}

// Push records a line. Repeating the previous line adds nothing.
func (h *History) Push(line string) {
	if n := len(h.lines); n > 0 && h.lines[n-1] == line {
		return
	}
	h.lines = append(h.lines, line)
	if len(h.lines) > h.limit {
		h.lines = h.lines[1:]
	}
}

// Prev steps toward older lines. The first call lands on the most
// recent one.
func (h *History) Prev() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.lines) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.lines[h.cursor], true
}

// Next steps back toward newer lines, returning false once recall has
// walked past the newest line and the input is fresh again.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.lines) {
		h.cursor = -1
		return "", false
	}
	return h.lines[h.cursor], true
}

// ResetCursor abandons any recall in progress.
func (h *History) ResetCursor() { h.cursor = -1 }
