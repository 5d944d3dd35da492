package router

// Entry is a screen left behind by forward navigation: what it was called
// with and the state it needs to resume.
type Entry struct {
	Screen Screen
	Input  any
	Resume any
}

// History is the back stack.
type History struct {
	entries []Entry
}

func NewHistory() *History {
	return &History{}
}

// Push records screen before navigating away from it.
func (h *History) Push(screen Screen, input any, resume any) {
	h.entries = append(h.entries, Entry{Screen: screen, Input: input, Resume: resume})
}

// Pop removes and returns the most recent entry, or nil when empty.
func (h *History) Pop() *Entry {
	if len(h.entries) == 0 {
		return nil
	}
	entry := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return &entry
}

// Peek returns the most recent entry without removing it, or nil when empty.
func (h *History) Peek() *Entry {
	if len(h.entries) == 0 {
		return nil
	}
	return &h.entries[len(h.entries)-1]
}

func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Clear() {
	h.entries = h.entries[:0]
}
