package mcq

import (
	"errors"
	"fmt"
	"strings"
)

// OptionCount is the fixed number of options every question carries.
// Options are labeled A-D positionally, so display order is meaningful.
const OptionCount = 4

// Record is the atomic question unit used across generation, storage,
// quiz-taking and export. The JSON field names are the wire schema the
// generative model is instructed to produce.
type Record struct {
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer string     `json:"correct_answer"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
}

var (
	ErrEmptyQuestion    = errors.New("question text is empty")
	ErrEmptyAnswer      = errors.New("correct answer is empty")
	ErrEmptyCategory    = errors.New("category is empty")
	ErrAnswerNotInList  = errors.New("correct answer is not one of the options")
	ErrDuplicateOptions = errors.New("options are not distinct")
)

// Validate enforces the structural invariant: non-empty fields, a valid
// difficulty, exactly four distinct options, and a correct answer that is
// string-identical to one of them. Generated and manually entered records
// pass through the same check.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return ErrEmptyQuestion
	}
	if r.CorrectAnswer == "" {
		return ErrEmptyAnswer
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if !r.Difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q", r.Difficulty)
	}
	if len(r.Options) != OptionCount {
		return fmt.Errorf("expected %d options, got %d", OptionCount, len(r.Options))
	}

	seen := make(map[string]struct{}, OptionCount)
	found := false
	for _, opt := range r.Options {
		if _, dup := seen[opt]; dup {
			return ErrDuplicateOptions
		}
		seen[opt] = struct{}{}
		if opt == r.CorrectAnswer {
			found = true
		}
	}
	if !found {
		return ErrAnswerNotInList
	}
	return nil
}

// Clone returns a deep copy so stored records cannot be mutated through
// shared option slices.
func (r Record) Clone() Record {
	out := r
	out.Options = make([]string, len(r.Options))
	copy(out.Options, r.Options)
	return out
}

// CloneAll deep-copies a question list.
func CloneAll(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
