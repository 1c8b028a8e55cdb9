package web

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
)

type handlers struct {
	svc *app.Service
	tpl *templates
	log *slog.Logger
}

func (h *handlers) write(w http.ResponseWriter, r *http.Request, t *template.Template, data any) {
	b, err := renderTemplate(t, data)
	if err != nil {
		h.log.Error("render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.tpl.index, nil)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	v := h.svc.Create()
	http.Redirect(w, r, "/game/"+v.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.write(w, r, h.tpl.game, v)
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	i := formInt(r, "i")
	h.transition(w, r, func(id string) (app.View, error) { return h.svc.Click(id, i) })
}

func (h *handlers) jump(w http.ResponseWriter, r *http.Request) {
	move := formInt(r, "move")
	h.transition(w, r, func(id string) (app.View, error) { return h.svc.JumpTo(id, move) })
}

func (h *handlers) order(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.ToggleOrder)
}

// transition applies fn to the session and answers htmx with the game
// fragment. Plain form posts are redirected back to the game page.
func (h *handlers) transition(w http.ResponseWriter, r *http.Request, fn func(id string) (app.View, error)) {
	id := chi.URLParam(r, "id")
	v, err := fn(id)
	if errors.Is(err, app.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("transition failed", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if r.Header.Get("HX-Request") == "" {
		http.Redirect(w, r, "/game/"+id, http.StatusSeeOther)
		return
	}
	h.write(w, r, h.tpl.frag, v)
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// formInt reads an integer form value; missing or malformed values yield -1,
// which every transition treats as an ignored click.
func formInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.FormValue(key))
	if err != nil {
		return -1
	}
	return n
}
