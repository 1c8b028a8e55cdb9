package domain

import "testing"

// commitMoves plays indexes on top of the last entry of h, alternating marks.
func commitMoves(t *testing.T, h *History, moves ...int) int {
	t.Helper()
	cur := h.Len() - 1
	for _, i := range moves {
		next, ok := Apply(h.At(cur).Board, i, Mover(cur))
		if !ok {
			t.Fatalf("move at %d rejected", i)
		}
		cur = h.Commit(next, CoordOf(i), cur)
	}
	return cur
}

func TestNewHistoryStartsEmpty(t *testing.T) {
	h := NewHistory()
	if h.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", h.Len())
	}
	e := h.At(0)
	if e.Board != (Board{}) {
		t.Fatalf("expected empty board, got %v", e.Board)
	}
	if e.Move.Set {
		t.Fatalf("expected no move on start entry, got %+v", e.Move)
	}
}

func TestCommitAppends(t *testing.T) {
	h := NewHistory()
	cur := commitMoves(t, h, 4, 0, 8)
	if cur != 3 || h.Len() != 4 {
		t.Fatalf("expected current 3 of 4 entries, got %d of %d", cur, h.Len())
	}
	if got := h.At(2).Move; got != CoordOf(0) {
		t.Fatalf("expected move (0, 0) at entry 2, got %+v", got)
	}
	// each entry differs from the previous one in exactly one cell
	for i := 1; i < h.Len(); i++ {
		before, after := h.At(i-1).Board, h.At(i).Board
		diff := 0
		for j := range after {
			if before[j] != after[j] {
				diff++
				if before[j] != Empty || after[j] != Mover(i-1) {
					t.Fatalf("entry %d: cell %d went %v -> %v", i, j, before[j], after[j])
				}
			}
		}
		if diff != 1 {
			t.Fatalf("entry %d differs in %d cells", i, diff)
		}
	}
}

func TestCommitBranchDiscardsFuture(t *testing.T) {
	h := NewHistory()
	commitMoves(t, h, 4, 0, 8)
	before := h.Entries()

	// rewind to move 1 and play elsewhere
	next, ok := Apply(h.At(1).Board, 2, Mover(1))
	if !ok {
		t.Fatalf("branch move rejected")
	}
	cur := h.Commit(next, CoordOf(2), 1)

	if cur != 2 || h.Len() != 3 {
		t.Fatalf("expected length 3 with current 2, got len=%d cur=%d", h.Len(), cur)
	}
	for i := 0; i <= 1; i++ {
		if h.At(i) != before[i] {
			t.Fatalf("entry %d changed by branching", i)
		}
	}
	if h.At(2).Board[2] != O || h.At(2).Board[0] != Empty {
		t.Fatalf("expected new branch entry, got %v", h.At(2).Board)
	}
	if len(before) != 4 || before[3].Board[8] != X {
		t.Fatalf("earlier Entries copy was modified: %v", before)
	}
}

func TestCommitClampsCurrent(t *testing.T) {
	h := NewHistory()
	commitMoves(t, h, 0)
	next, _ := Apply(h.At(1).Board, 1, O)
	if cur := h.Commit(next, CoordOf(1), 99); cur != 2 {
		t.Fatalf("expected append after last entry, got %d", cur)
	}
}

func TestContains(t *testing.T) {
	h := NewHistory()
	commitMoves(t, h, 0, 1)
	for move, want := range map[int]bool{-1: false, 0: true, 2: true, 3: false} {
		if h.Contains(move) != want {
			t.Fatalf("Contains(%d) = %v", move, !want)
		}
	}
}
