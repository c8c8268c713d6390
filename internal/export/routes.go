package export

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/json", h.ExportJSON)
	r.Post("/pdf", h.ExportPDF)

	return r
}
