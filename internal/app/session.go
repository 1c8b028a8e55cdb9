package app

import (
	"fmt"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

// Session is one game: its history, the move being shown and the order the
// move list is displayed in. It is not safe for concurrent use.
type Session struct {
	history   *domain.History
	current   int
	ascending bool
}

// NewSession starts a game at the empty board with the move list ascending.
func NewSession() *Session {
	return &Session{history: domain.NewHistory(), ascending: true}
}

// Board returns the board at the current move.
func (s *Session) Board() domain.Board {
	return s.history.At(s.current).Board
}

// Current returns the index of the displayed history entry.
func (s *Session) Current() int { return s.current }

// Len returns the number of history entries.
func (s *Session) Len() int { return s.history.Len() }

// Ascending reports whether the move list is shown oldest first.
func (s *Session) Ascending() bool { return s.ascending }

// Next returns the mark that plays the next move.
func (s *Session) Next() domain.Cell {
	return domain.Mover(s.current)
}

// Over reports whether the current board is won or full.
func (s *Session) Over() bool {
	b := s.Board()
	if _, won := domain.Winner(b); won {
		return true
	}
	return domain.Full(b)
}

// Status returns the status line for the current board.
func (s *Session) Status() string {
	b := s.Board()
	if ln, won := domain.Winner(b); won {
		return "Winner " + ln.Mark.String()
	}
	if domain.Full(b) {
		return "Draw"
	}
	return "Next player " + s.Next().String()
}

// Click plays the next mark at board index i. Clicks on a finished game, an
// occupied cell or outside the board are ignored and report false.
func (s *Session) Click(i int) bool {
	if s.Over() {
		return false
	}
	next, ok := domain.Apply(s.Board(), i, s.Next())
	if !ok {
		return false
	}
	s.current = s.history.Commit(next, domain.CoordOf(i), s.current)
	return true
}

// JumpTo shows history entry move. Moves outside the history are ignored.
func (s *Session) JumpTo(move int) bool {
	if !s.history.Contains(move) {
		return false
	}
	s.current = move
	return true
}

// ToggleOrder flips the display order of the move list.
func (s *Session) ToggleOrder() {
	s.ascending = !s.ascending
}

// Square is one rendered board cell.
type Square struct {
	Index   int
	Mark    string
	Winning bool
}

// MoveButton is one entry of the move list.
type MoveButton struct {
	Move    int
	Label   string
	Current bool
}

// View is everything a renderer needs to draw a session.
type View struct {
	ID       string
	Squares  [9]Square
	Status   string
	MoveLine string
	Over     bool
	Order    string
	Moves    []MoveButton
}

// View derives the display state from the session.
func (s *Session) View() View {
	b := s.Board()
	ln, won := domain.Winner(b)

	v := View{
		Status:   s.Status(),
		MoveLine: fmt.Sprintf("You are at move %d", s.current),
		Over:     s.Over(),
		Order:    "desc",
		Moves:    make([]MoveButton, 0, s.history.Len()),
	}
	if s.ascending {
		v.Order = "asc"
	}
	for i, c := range b {
		v.Squares[i] = Square{Index: i, Mark: c.String(), Winning: won && ln.Has(i)}
	}

	n := s.history.Len()
	for k := 0; k < n; k++ {
		move := k
		if !s.ascending {
			move = n - 1 - k
		}
		v.Moves = append(v.Moves, MoveButton{
			Move:    move,
			Label:   moveLabel(move, s.history.At(move).Move),
			Current: move == s.current,
		})
	}
	return v
}

func moveLabel(move int, c domain.Coord) string {
	if move == 0 || !c.Set {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move %d (%d, %d)", move, c.Row, c.Col)
}
