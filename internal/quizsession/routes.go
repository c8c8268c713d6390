package quizsession

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Start)
	r.Get("/{id}", h.Get)
	r.Put("/{id}/answers", h.Answer)
	r.Post("/{id}/submit", h.Submit)
	r.Get("/{id}/result", h.Result)
	r.Delete("/{id}", h.End)

	return r
}
