package questionset

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/mcq"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	questions, err := h.service.Load(r.Context(), name)
	if err != nil {
		config.Error(w, http.StatusNotFound, "set not found")
		return
	}

	config.JSON(w, http.StatusOK, SetResponse{Name: name, Questions: questions})
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	name := chi.URLParam(r, "name")

	var dto SaveSetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Save(r.Context(), name, dto.Questions); err != nil {
		h.writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, SetResponse{Name: name, Questions: dto.Questions})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.service.Delete(r.Context(), name); err != nil {
		config.Error(w, http.StatusNotFound, "set not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddQuestion appends a manually entered question, creating the set when it
// does not exist yet.
func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	name := chi.URLParam(r, "name")

	var question mcq.Record
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if d, err := mcq.ParseDifficulty(string(question.Difficulty)); err == nil {
		question.Difficulty = d
	}

	if err := h.service.AddQuestion(r.Context(), name, question); err != nil {
		h.writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, question)
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	name := chi.URLParam(r, "name")

	if err := h.service.Archive(r.Context(), name); err != nil {
		h.writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"archived": name})
}

func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	name := chi.URLParam(r, "name")

	if err := h.service.Restore(r.Context(), name); err != nil {
		h.writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"restored": name})
}

func (h *Handler) ListArchived(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sets, err := h.service.ListArchived(r.Context())
	if err != nil {
		h.writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, sets)
}

func (h *Handler) writeError(w http.ResponseWriter, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, ErrSetNotFound):
		config.Error(w, http.StatusNotFound, "set not found")
	case errors.Is(err, ErrArchiveDisabled):
		config.Error(w, http.StatusServiceUnavailable, "archive storage is not configured")
	case errors.Is(err, ErrEmptyName), errors.Is(err, ErrEmptyQuestions):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("Question set operation failed")
		config.Error(w, http.StatusBadRequest, err.Error())
	}
}
