package domain

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns the mark shown for the cell, "" for an empty one.
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// Coord is the row/column a move was played at. The zero value means no move.
type Coord struct {
	Row, Col int
	Set      bool
}

// CoordOf maps a board index to its row and column.
func CoordOf(i int) Coord {
	return Coord{Row: i / 3, Col: i % 3, Set: true}
}

// Line is a completed three-in-a-row.
type Line struct {
	Mark  Cell
	Cells [3]int
}

// Has reports whether board index i is part of the line.
func (l Line) Has(i int) bool {
	return l.Cells[0] == i || l.Cells[1] == i || l.Cells[2] == i
}

var lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the first completed line on b, checking rows, then columns,
// then diagonals.
func Winner(b Board) (Line, bool) {
	for _, ln := range lines {
		a := b[ln[0]]
		if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
			return Line{Mark: a, Cells: ln}, true
		}
	}
	return Line{}, false
}

// Full reports whether every cell is taken. It does not look for a winner:
// a full board may also hold a completed line, so check Winner first.
func Full(b Board) bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Apply returns b with mover's mark at index i. Illegal moves (out of range,
// occupied cell, no mover, board already won) return b unchanged and false.
func Apply(b Board, i int, mover Cell) (Board, bool) {
	if i < 0 || i >= len(b) || mover == Empty {
		return b, false
	}
	if b[i] != Empty {
		return b, false
	}
	if _, won := Winner(b); won {
		return b, false
	}
	b[i] = mover
	return b, true
}

// Mover returns whose turn it is after the given number of moves.
func Mover(move int) Cell {
	if move%2 == 0 {
		return X
	}
	return O
}
