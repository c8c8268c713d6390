package export

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/mcq"
	"github.com/quizgenius/quizgenius/internal/questionset"
)

const defaultTitle = "MCQ Questions"

type Handler struct {
	sets questionset.Service
}

func NewHandler(sets questionset.Service) *Handler {
	return &Handler{sets: sets}
}

type exportRequest struct {
	Title     string       `json:"title"`
	Questions []mcq.Record `json:"questions"`
}

// ExportJSON serializes an ad-hoc question list, e.g. a client's current
// working questions.
func (h *Handler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, "mcq_questions.json", req.Questions)
}

func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	title := req.Title
	if title == "" {
		title = defaultTitle
	}
	h.writePDF(w, r, "mcq_questions.pdf", title, req.Questions)
}

// ExportSetJSON serializes a saved set.
func (h *Handler) ExportSetJSON(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	questions, err := h.sets.Load(r.Context(), name)
	if err != nil {
		config.Error(w, http.StatusNotFound, "set not found")
		return
	}
	h.writeJSON(w, r, name+".json", questions)
}

func (h *Handler) ExportSetPDF(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	questions, err := h.sets.Load(r.Context(), name)
	if err != nil {
		config.Error(w, http.StatusNotFound, "set not found")
		return
	}
	h.writePDF(w, r, name+".pdf", name, questions)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*exportRequest, bool) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if len(req.Questions) == 0 {
		config.Error(w, http.StatusBadRequest, "no questions to export")
		return nil, false
	}
	return &req, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, filename string, questions []mcq.Record) {
	log := config.WithContext(r.Context())

	data, err := ToJSON(questions)
	if err != nil {
		log.WithError(err).Error("JSON export failed")
		config.Error(w, http.StatusInternalServerError, "failed to export questions")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) writePDF(w http.ResponseWriter, r *http.Request, filename, title string, questions []mcq.Record) {
	log := config.WithContext(r.Context())

	data, err := ToPDF(title, questions)
	if err != nil {
		log.WithError(err).Error("PDF export failed")
		config.Error(w, http.StatusInternalServerError, "failed to export questions")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
