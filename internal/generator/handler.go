package generator

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/extract"
	"github.com/quizgenius/quizgenius/internal/mcq"
)

type Handler struct {
	service   Service
	extractor extract.Service
}

func NewHandler(service Service, extractor extract.Service) *Handler {
	return &Handler{service: service, extractor: extractor}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.generate(w, r, req)
}

// GenerateFromDocument extracts text from an uploaded PDF/DOCX/TXT file and
// feeds it through the same pipeline.
func (h *Handler) GenerateFromDocument(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	filename, contentType, data, err := extract.ReadUpload(r)
	if err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := h.extractor.FromUpload(filename, contentType, data)
	if errors.Is(err, extract.ErrUnsupportedType) {
		config.Error(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	if err != nil {
		log.WithError(err).Warnf("Partial extraction from %s", filename)
	}
	if strings.TrimSpace(text) == "" {
		config.Error(w, http.StatusUnprocessableEntity, "could not extract text from the uploaded document")
		return
	}

	req := Request{
		Text:     text,
		Category: r.FormValue("category"),
	}
	if n, err := strconv.Atoi(r.FormValue("num_questions")); err == nil {
		req.NumQuestions = n
	}
	if d, err := mcq.ParseDifficulty(r.FormValue("difficulty")); err == nil {
		req.Difficulty = d
	}

	h.generate(w, r, req)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, req Request) {
	log := config.WithContext(r.Context())

	if strings.TrimSpace(req.Text) == "" {
		config.Error(w, http.StatusBadRequest, "text is required")
		return
	}
	if !req.Difficulty.Valid() {
		config.Error(w, http.StatusBadRequest, "difficulty must be Easy, Medium or Hard")
		return
	}

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		var parseErr *ParseError
		switch {
		case errors.Is(err, ErrMissingAPIKey):
			config.Error(w, http.StatusServiceUnavailable, "no generative model credential configured")
		case errors.As(err, &parseErr):
			config.Error(w, http.StatusBadGateway, "the model returned malformed output and nothing was generated")
		default:
			log.WithError(err).Error("Failed to generate questions")
			config.Error(w, http.StatusBadGateway, "failed to generate questions")
		}
		return
	}

	config.JSON(w, http.StatusOK, result)
}
