package generator

import (
	"encoding/json"

	"github.com/quizgenius/quizgenius/internal/mcq"
)

// Request are the user-supplied generation parameters.
type Request struct {
	Text         string         `json:"text"`
	NumQuestions int            `json:"num_questions"`
	Difficulty   mcq.Difficulty `json:"difficulty"`
	Category     string         `json:"category"`
}

// Rejection describes one generated item dropped by validation. Rejections
// are a side channel, not an error: a batch may legitimately return fewer
// validated questions than requested.
type Rejection struct {
	Index  int             `json:"index"`
	Reason string          `json:"reason"`
	Raw    json.RawMessage `json:"raw,omitempty"`
}

// Result is the outcome of one generation call.
type Result struct {
	Questions []mcq.Record `json:"questions"`
	Rejected  []Rejection  `json:"rejected,omitempty"`
}
