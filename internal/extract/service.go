package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedType means the upload is neither PDF, DOCX nor plain text.
var ErrUnsupportedType = errors.New("extract: unsupported file type")

// Service turns uploaded documents into plain text. Extraction is
// best-effort: a partial failure returns the text recovered so far together
// with a non-nil error, and nothing escapes as a panic.
type Service interface {
	FromUpload(filename, contentType string, data []byte) (string, error)
	FromPDF(data []byte) (string, error)
	FromDocx(data []byte) (string, error)
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) FromUpload(filename, contentType string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".pdf" || strings.Contains(contentType, "pdf"):
		return s.FromPDF(data)
	case ext == ".docx" || strings.Contains(contentType, "officedocument.wordprocessingml"):
		return s.FromDocx(data)
	case ext == ".txt" || strings.HasPrefix(contentType, "text/"):
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, filename, contentType)
	}
}

func (s *service) FromPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed documents; recover so the
	// boundary still returns best-effort text.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	var pageErr error
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			pageErr = fmt.Errorf("page %d: %w", i, err)
			continue
		}
		sb.WriteString(content)
	}
	return sb.String(), pageErr
}

func (s *service) FromDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var sb strings.Builder
	for _, it := range doc.Document.Body.Items {
		switch it.(type) {
		case *docx.Paragraph, *docx.Table:
			fmt.Fprintln(&sb, it)
		}
	}
	return sb.String(), nil
}
