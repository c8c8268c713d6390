package quizsession

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/questionset"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto StartSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.manager.Start(r.Context(), dto.SetName)
	if err != nil {
		switch {
		case errors.Is(err, questionset.ErrSetNotFound):
			config.Error(w, http.StatusNotFound, "set not found")
		case errors.Is(err, ErrEmptySet):
			config.Error(w, http.StatusUnprocessableEntity, "the selected set has no questions")
		default:
			log.WithError(err).Error("Failed to start quiz session")
			config.Error(w, http.StatusInternalServerError, "failed to start quiz session")
		}
		return
	}

	config.JSON(w, http.StatusCreated, view)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.manager.Get(r.Context(), id)
	if err != nil {
		config.Error(w, http.StatusNotFound, "session not found")
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var dto AnswerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.manager.Answer(r.Context(), id, dto.QuestionIndex, dto.Option)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			config.Error(w, http.StatusNotFound, "session not found")
		case errors.Is(err, ErrAlreadySubmitted):
			config.Error(w, http.StatusConflict, "quiz already submitted")
		default:
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	result, err := h.manager.Submit(r.Context(), id)
	if err != nil {
		config.Error(w, http.StatusNotFound, "session not found")
		return
	}
	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	result, err := h.manager.Result(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotSubmitted):
			config.Error(w, http.StatusConflict, "quiz not submitted yet")
		default:
			config.Error(w, http.StatusNotFound, "session not found")
		}
		return
	}
	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.manager.End(r.Context(), id); err != nil {
		config.Error(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}
