package extract

import (
	"errors"
	"io"
	"net/http"

	"github.com/quizgenius/quizgenius/internal/config"
)

// MaxUploadSize caps document uploads at 20 MiB.
const MaxUploadSize = 20 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type extractResponse struct {
	Text    string `json:"text"`
	Warning string `json:"warning,omitempty"`
}

func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	filename, contentType, data, err := ReadUpload(r)
	if err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := h.service.FromUpload(filename, contentType, data)
	if errors.Is(err, ErrUnsupportedType) {
		config.Error(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	resp := extractResponse{Text: text}
	if err != nil {
		log.WithError(err).Warnf("Partial extraction from %s", filename)
		resp.Warning = err.Error()
		if text == "" {
			config.JSON(w, http.StatusUnprocessableEntity, resp)
			return
		}
	}
	config.JSON(w, http.StatusOK, resp)
}

// ReadUpload pulls the "file" part out of a multipart request. Shared with
// the document-generation endpoint.
func ReadUpload(r *http.Request) (filename, contentType string, data []byte, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		return "", "", nil, errors.New("invalid multipart form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", "", nil, errors.New("file field is required")
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return "", "", nil, errors.New("failed to read upload")
	}
	return header.Filename, header.Header.Get("Content-Type"), data, nil
}
