package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/quizgenius/quizgenius/internal/mcq"
)

// ToPDF renders one paragraph block per question: the numbered question
// text, the four lettered options, the correct answer and the
// difficulty/category line, under a title header. On failure it returns an
// empty byte slice together with the error.
func ToPDF(title string, questions []mcq.Record) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 10, tr(title), "", "C", false)
	doc.Ln(4)

	for i, q := range questions {
		doc.SetFont("Helvetica", "B", 12)
		doc.MultiCell(0, 8, tr(fmt.Sprintf("%d. %s", i+1, q.Question)), "", "L", false)

		doc.SetFont("Helvetica", "", 11)
		for j, opt := range q.Options {
			doc.MultiCell(0, 6, tr(fmt.Sprintf("    %c. %s", 'A'+j, opt)), "", "L", false)
		}
		doc.MultiCell(0, 6, tr(fmt.Sprintf("    Correct Answer: %s", q.CorrectAnswer)), "", "L", false)

		doc.SetFont("Helvetica", "I", 10)
		doc.MultiCell(0, 6, tr(fmt.Sprintf("    Difficulty: %s | Category: %s", q.Difficulty, q.Category)), "", "L", false)
		doc.Ln(4)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
