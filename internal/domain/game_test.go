package domain

import (
	"testing"
)

// helper to apply a sequence of moves by index, alternating X and O
func playMoves(t *testing.T, moves ...int) Board {
	t.Helper()
	var b Board
	for n, i := range moves {
		var ok bool
		b, ok = Apply(b, i, Mover(n))
		if !ok {
			t.Fatalf("move %d (index %d) rejected on %v", n, i, b)
		}
	}
	return b
}

func TestCellString(t *testing.T) {
	if Empty.String() != "" || X.String() != "X" || O.String() != "O" {
		t.Fatalf("unexpected marks: %q %q %q", Empty, X, O)
	}
}

func TestCoordOf(t *testing.T) {
	cases := map[int]Coord{
		0: {Row: 0, Col: 0, Set: true},
		2: {Row: 0, Col: 2, Set: true},
		4: {Row: 1, Col: 1, Set: true},
		7: {Row: 2, Col: 1, Set: true},
	}
	for i, want := range cases {
		if got := CoordOf(i); got != want {
			t.Fatalf("CoordOf(%d) = %+v, want %+v", i, got, want)
		}
	}
}

func TestWinnerEveryLine(t *testing.T) {
	for _, ln := range lines {
		for _, mark := range []Cell{X, O} {
			var b Board
			for _, i := range ln {
				b[i] = mark
			}
			got, ok := Winner(b)
			if !ok {
				t.Fatalf("expected %v to win on %v", mark, ln)
			}
			if got.Mark != mark || got.Cells != ln {
				t.Fatalf("expected (%v, %v), got (%v, %v)", mark, ln, got.Mark, got.Cells)
			}
		}
	}
}

func TestWinnerNone(t *testing.T) {
	boards := []Board{
		{},
		{X, O, X, Empty, Empty, Empty, Empty, Empty, Empty},
		// full board, no line
		{X, O, X, X, O, O, O, X, X},
		// mixed line
		{X, X, O, Empty, Empty, Empty, Empty, Empty, Empty},
	}
	for _, b := range boards {
		if ln, ok := Winner(b); ok {
			t.Fatalf("expected no winner on %v, got %+v", b, ln)
		}
	}
}

func TestWinnerPriorityOrder(t *testing.T) {
	// X holds both the top row and the left column; rows are checked first.
	b := Board{X, X, X, X, O, O, X, O, O}
	ln, ok := Winner(b)
	if !ok || ln.Cells != [3]int{0, 1, 2} {
		t.Fatalf("expected top row first, got %+v ok=%v", ln, ok)
	}
}

func TestLineHas(t *testing.T) {
	ln := Line{Mark: X, Cells: [3]int{2, 4, 6}}
	for i := 0; i < 9; i++ {
		want := i == 2 || i == 4 || i == 6
		if ln.Has(i) != want {
			t.Fatalf("Has(%d) = %v", i, !want)
		}
	}
}

func TestFull(t *testing.T) {
	if Full(Board{}) {
		t.Fatalf("empty board reported full")
	}
	if Full(Board{X, O, X, X, O, O, O, X, Empty}) {
		t.Fatalf("board with one gap reported full")
	}
	if !Full(Board{X, O, X, X, O, O, O, X, X}) {
		t.Fatalf("drawn board not reported full")
	}
	// full and won at the same time
	won := Board{X, X, X, O, O, X, X, O, O}
	if !Full(won) {
		t.Fatalf("full won board not reported full")
	}
	if _, ok := Winner(won); !ok {
		t.Fatalf("full won board lost its winner")
	}
}

func TestApplyPlacesMarkWithoutMutatingInput(t *testing.T) {
	var b Board
	next, ok := Apply(b, 4, X)
	if !ok {
		t.Fatalf("expected move accepted")
	}
	if next[4] != X {
		t.Fatalf("expected X at 4, got %v", next[4])
	}
	if b != (Board{}) {
		t.Fatalf("input board mutated: %v", b)
	}
	for i, c := range next {
		if i != 4 && c != Empty {
			t.Fatalf("cell %d changed to %v", i, c)
		}
	}
}

func TestApplyOccupied(t *testing.T) {
	b := playMoves(t, 0)
	for _, mover := range []Cell{X, O} {
		next, ok := Apply(b, 0, mover)
		if ok || next != b {
			t.Fatalf("expected no-op on occupied cell, ok=%v board=%v", ok, next)
		}
	}
}

func TestApplyOutOfBounds(t *testing.T) {
	var b Board
	for _, i := range []int{-1, 9, 42} {
		if next, ok := Apply(b, i, X); ok || next != b {
			t.Fatalf("expected no-op for index %d", i)
		}
	}
	if _, ok := Apply(b, 0, Empty); ok {
		t.Fatalf("expected no-op without a mover")
	}
}

func TestApplyAfterWinIsNoop(t *testing.T) {
	// X wins on top row
	b := playMoves(t, 0, 3, 1, 4, 2)
	if _, ok := Winner(b); !ok {
		t.Fatalf("expected X win before extra move")
	}
	for i := 0; i < 9; i++ {
		if b[i] != Empty {
			continue
		}
		for _, mover := range []Cell{X, O} {
			if next, ok := Apply(b, i, mover); ok || next != b {
				t.Fatalf("expected no-op at %d for %v after win", i, mover)
			}
		}
	}
}

func TestMoverParity(t *testing.T) {
	want := []Cell{X, O, X, O, X, O, X, O, X}
	for n, w := range want {
		if got := Mover(n); got != w {
			t.Fatalf("Mover(%d) = %v, want %v", n, got, w)
		}
	}
}

func TestDrawSequence(t *testing.T) {
	b := playMoves(t, 0, 1, 2, 4, 3, 5, 7, 6, 8)
	if _, ok := Winner(b); ok {
		t.Fatalf("expected no winner on draw board %v", b)
	}
	if !Full(b) {
		t.Fatalf("expected draw board full")
	}
}
