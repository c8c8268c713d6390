package questionset

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{name}", h.Get)
	r.Put("/{name}", h.Save)
	r.Delete("/{name}", h.Delete)
	r.Post("/{name}/questions", h.AddQuestion)
	r.Post("/{name}/archive", h.Archive)
	r.Post("/{name}/restore", h.Restore)

	return r
}
