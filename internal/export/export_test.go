package export_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/quizgenius/quizgenius/internal/export"
	"github.com/quizgenius/quizgenius/internal/mcq"
)

var sample = []mcq.Record{
	{
		Question:      "What is the capital of France?",
		Options:       []string{"Paris", "London", "Berlin", "Rome"},
		CorrectAnswer: "Paris",
		Category:      "Geography",
		Difficulty:    mcq.DifficultyEasy,
	},
	{
		Question:      "Which gas do plants absorb?",
		Options:       []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Helium"},
		CorrectAnswer: "Carbon dioxide",
		Category:      "Biology",
		Difficulty:    mcq.DifficultyMedium,
	},
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := export.ToJSON(sample)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	got, err := export.FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if !reflect.DeepEqual(got, sample) {
		t.Errorf("round trip changed the questions:\ngot  %+v\nwant %+v", got, sample)
	}
}

func TestFromJSONValidates(t *testing.T) {
	// Well-formed JSON whose record breaks the answer-in-options invariant.
	bad := `[{"question": "q", "options": ["a","b","c","d"], "correct_answer": "z", "category": "x", "difficulty": "Easy"}]`

	if _, err := export.FromJSON([]byte(bad)); err == nil {
		t.Fatal("FromJSON accepted a record whose answer is not among its options")
	}

	if _, err := export.FromJSON([]byte("{")); err == nil {
		t.Fatal("FromJSON accepted truncated JSON")
	}
}

func TestToPDF(t *testing.T) {
	data, err := export.ToPDF("Practice Quiz", sample)
	if err != nil {
		t.Fatalf("ToPDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header: %q", data[:min(len(data), 8)])
	}
	if len(data) < 500 {
		t.Errorf("suspiciously small PDF: %d bytes", len(data))
	}
}

func TestToPDFEmpty(t *testing.T) {
	data, err := export.ToPDF("Empty", nil)
	if err != nil {
		t.Fatalf("ToPDF on an empty list failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("empty export is not a valid PDF document")
	}
}

func TestToJSONPrettyPrinted(t *testing.T) {
	data, err := export.ToJSON(sample)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n    ") {
		t.Error("output is not indented")
	}
}
