package quizsession

import (
	"time"

	"github.com/google/uuid"

	"github.com/quizgenius/quizgenius/internal/mcq"
)

// SessionQuestion is one question inside a session snapshot. The UID is
// assigned at snapshot time; answers are keyed by position, so duplicate
// question texts cannot collide.
type SessionQuestion struct {
	UID    uuid.UUID
	Record mcq.Record
}

// Session is the ephemeral state of one quiz attempt. Questions are a
// snapshot of the chosen set: later changes to the set never affect a quiz
// in progress.
type Session struct {
	ID          uuid.UUID
	SetName     string
	Questions   []SessionQuestion
	Answers     []string // index-aligned with Questions; "" means unanswered
	Submitted   bool
	StartedAt   time.Time
	SubmittedAt *time.Time
}

func newSession(setName string, questions []mcq.Record) *Session {
	snapshot := make([]SessionQuestion, len(questions))
	for i, q := range questions {
		snapshot[i] = SessionQuestion{UID: uuid.New(), Record: q.Clone()}
	}

	return &Session{
		ID:        uuid.New(),
		SetName:   setName,
		Questions: snapshot,
		Answers:   make([]string, len(questions)),
		StartedAt: time.Now(),
	}
}

// score counts exact matches between the selected option and the correct
// answer. Unanswered entries never match.
func (s *Session) score() int {
	score := 0
	for i, q := range s.Questions {
		if s.Answers[i] != "" && s.Answers[i] == q.Record.CorrectAnswer {
			score++
		}
	}
	return score
}
