package domain

// Entry is one board snapshot together with the move that produced it.
// Move is unset for the starting board.
type Entry struct {
	Board Board
	Move  Coord
}

// History is the ordered list of snapshots of one game. It always starts with
// the empty board.
type History struct {
	entries []Entry
}

// NewHistory returns a history holding only the empty board.
func NewHistory() *History {
	return &History{entries: []Entry{{}}}
}

// Commit drops every entry after current, appends b and returns the index of
// the new last entry. Playing from a past point discards the old future.
func (h *History) Commit(b Board, c Coord, current int) int {
	if current < 0 || current >= len(h.entries) {
		current = len(h.entries) - 1
	}
	h.entries = append(h.entries[:current+1:current+1], Entry{Board: b, Move: c})
	return len(h.entries) - 1
}

// Contains reports whether move indexes an existing entry.
func (h *History) Contains(move int) bool {
	return move >= 0 && move < len(h.entries)
}

// Len returns the number of entries, the starting board included.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns entry i. It panics when i is out of range, like a slice index.
func (h *History) At(i int) Entry {
	return h.entries[i]
}

// Entries returns a copy of all entries in chronological order.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}
