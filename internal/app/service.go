package app

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Errors exposed by the service layer.
var ErrNotFound = errors.New("game not found")

// Service keeps the live sessions, one per browser game. Each session is only
// touched under the service lock.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session
	log      *slog.Logger
}

// NewService creates an empty registry. A nil logger discards output.
func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		sessions: make(map[string]*Session),
		log:      log.With("component", "sessions"),
	}
}

// Create starts a new session and returns its view.
func (s *Service) Create() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	ss := NewSession()
	s.sessions[id] = ss
	s.log.Info("session created", "id", id)
	return viewOf(id, ss)
}

// Get returns the current view of a session.
func (s *Service) Get(id string) (View, error) {
	return s.do(id, "view", func(*Session) bool { return false })
}

// Click plays at board index i. Ignored clicks still return the view.
func (s *Service) Click(id string, i int) (View, error) {
	return s.do(id, "click", func(ss *Session) bool {
		if !ss.Click(i) {
			s.log.Debug("click ignored", "id", id, "index", i)
			return false
		}
		return true
	})
}

// JumpTo moves the session to a past (or future) history entry.
func (s *Service) JumpTo(id string, move int) (View, error) {
	return s.do(id, "jump", func(ss *Session) bool {
		if !ss.JumpTo(move) {
			s.log.Debug("jump ignored", "id", id, "move", move)
			return false
		}
		return true
	})
}

// ToggleOrder flips the move list order of a session.
func (s *Service) ToggleOrder(id string) (View, error) {
	return s.do(id, "order", func(ss *Session) bool {
		ss.ToggleOrder()
		return true
	})
}

// Delete ends a session.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	s.log.Info("session deleted", "id", id)
	return nil
}

// Len returns the number of live sessions.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Service) do(id, op string, fn func(*Session) bool) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.sessions[id]
	if !ok {
		return View{}, ErrNotFound
	}
	if fn(ss) {
		s.log.Debug("session updated", "id", id, "op", op, "move", ss.Current())
	}
	return viewOf(id, ss), nil
}

func viewOf(id string, ss *Session) View {
	v := ss.View()
	v.ID = id
	return v
}
