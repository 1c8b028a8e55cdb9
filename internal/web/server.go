package web

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/logging"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Requests(log))
	r.Use(middleware.Recoverer)

	h := &handlers{svc: s, tpl: loadTemplates(), log: log.With("component", "web")}
	r.Get("/", h.index)
	r.Get("/healthz", h.health)
	r.Post("/game", h.create)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/play", h.play)
		r.Post("/jump", h.jump)
		r.Post("/order", h.order)
	})
	return r
}
