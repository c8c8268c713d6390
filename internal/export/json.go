package export

import (
	"encoding/json"
	"fmt"

	"github.com/quizgenius/quizgenius/internal/mcq"
)

// ToJSON renders a question list as pretty-printed UTF-8 JSON. Field order
// is fixed by the mcq.Record struct tags.
func ToJSON(questions []mcq.Record) ([]byte, error) {
	data, err := json.MarshalIndent(questions, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal questions: %w", err)
	}
	return data, nil
}

// FromJSON is the inverse of ToJSON; every decoded record is validated.
func FromJSON(data []byte) ([]mcq.Record, error) {
	var questions []mcq.Record
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("export: unmarshal questions: %w", err)
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("export: question %d: %w", i+1, err)
		}
	}
	return questions, nil
}
