package quizsession

import (
	"time"

	"github.com/google/uuid"

	"github.com/quizgenius/quizgenius/internal/mcq"
)

type StartSessionDTO struct {
	SetName string `json:"set_name"`
}

type AnswerDTO struct {
	QuestionIndex int    `json:"question_index"`
	Option        string `json:"option"`
}

// QuestionView withholds the correct answer while the quiz is active.
type QuestionView struct {
	UID            uuid.UUID      `json:"uid"`
	Number         int            `json:"number"`
	Question       string         `json:"question"`
	Options        []string       `json:"options"`
	Category       string         `json:"category"`
	Difficulty     mcq.Difficulty `json:"difficulty"`
	SelectedOption string         `json:"selected_option,omitempty"`
}

type SessionView struct {
	ID        uuid.UUID      `json:"id"`
	SetName   string         `json:"set_name"`
	Submitted bool           `json:"submitted"`
	StartedAt time.Time      `json:"started_at"`
	Questions []QuestionView `json:"questions"`
}

type QuestionResult struct {
	Number        int    `json:"number"`
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

type Result struct {
	SessionID   uuid.UUID        `json:"session_id"`
	SetName     string           `json:"set_name"`
	Score       int              `json:"score"`
	Total       int              `json:"total"`
	Percentage  float64          `json:"percentage"`
	Questions   []QuestionResult `json:"questions"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

func viewOf(s *Session) *SessionView {
	view := &SessionView{
		ID:        s.ID,
		SetName:   s.SetName,
		Submitted: s.Submitted,
		StartedAt: s.StartedAt,
		Questions: make([]QuestionView, len(s.Questions)),
	}
	for i, q := range s.Questions {
		options := make([]string, len(q.Record.Options))
		copy(options, q.Record.Options)
		view.Questions[i] = QuestionView{
			UID:            q.UID,
			Number:         i + 1,
			Question:       q.Record.Question,
			Options:        options,
			Category:       q.Record.Category,
			Difficulty:     q.Record.Difficulty,
			SelectedOption: s.Answers[i],
		}
	}
	return view
}
