package quizsession

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/questionset"
)

var (
	ErrSessionNotFound = errors.New("quizsession: session not found")
	ErrEmptySet        = errors.New("quizsession: cannot start a quiz on an empty set")
	ErrAlreadySubmitted = errors.New("quizsession: quiz already submitted")
	ErrNotSubmitted    = errors.New("quizsession: quiz not submitted yet")
	ErrUnknownOption   = errors.New("quizsession: option is not one of the question's options")
)

// Manager owns all live quiz sessions. Each attempt gets its own Session
// instance; the map is the only shared state.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	sets     questionset.Service
}

func NewManager(sets questionset.Service) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		sets:     sets,
	}
}

// Start snapshots the named set into a new session. Starting on a missing
// or empty set is rejected here, not deferred to scoring.
func (m *Manager) Start(ctx context.Context, setName string) (*SessionView, error) {
	log := config.WithContext(ctx)

	questions, err := m.sets.Load(ctx, setName)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrEmptySet
	}

	session := newSession(setName, questions)

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	log.Infof("Started quiz session %s on set %q (%d questions)", session.ID, setName, len(questions))
	return viewOf(session), nil
}

func (m *Manager) Get(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return viewOf(session), nil
}

// Answer records the selected option for one question. Re-selecting
// overwrites (last-selected-wins) and selecting the same option twice is a
// no-op, so the operation is idempotent.
func (m *Manager) Answer(ctx context.Context, id uuid.UUID, index int, option string) (*SessionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Submitted {
		return nil, ErrAlreadySubmitted
	}
	if index < 0 || index >= len(session.Questions) {
		return nil, fmt.Errorf("quizsession: question index %d out of range", index)
	}

	valid := false
	for _, opt := range session.Questions[index].Record.Options {
		if opt == option {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrUnknownOption
	}

	session.Answers[index] = option
	return viewOf(session), nil
}

// Submit transitions the session to its read-only submitted state and
// computes the result. Submitting an already-submitted session returns the
// same result, keeping the transition idempotent for retried requests.
// Unanswered questions score as incorrect.
func (m *Manager) Submit(ctx context.Context, id uuid.UUID) (*Result, error) {
	log := config.WithContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !session.Submitted {
		session.Submitted = true
		now := time.Now()
		session.SubmittedAt = &now
		log.Infof("Submitted quiz session %s", id)
	}

	return resultOf(session), nil
}

func (m *Manager) Result(ctx context.Context, id uuid.UUID) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !session.Submitted {
		return nil, ErrNotSubmitted
	}
	return resultOf(session), nil
}

// End removes the session, returning its slot to the idle state.
func (m *Manager) End(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	config.WithContext(ctx).Infof("Ended quiz session %s", id)
	return nil
}

// resultOf recomputes the result from (questions, answers) alone; the score
// is never stored as independent mutable state.
func resultOf(s *Session) *Result {
	score := s.score()
	total := len(s.Questions)

	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(score)/float64(total)*10000) / 100
	}

	result := &Result{
		SessionID:  s.ID,
		SetName:    s.SetName,
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Questions:  make([]QuestionResult, total),
	}
	if s.SubmittedAt != nil {
		result.SubmittedAt = *s.SubmittedAt
	}

	for i, q := range s.Questions {
		answer := s.Answers[i]
		result.Questions[i] = QuestionResult{
			Number:        i + 1,
			Question:      q.Record.Question,
			YourAnswer:    answer,
			CorrectAnswer: q.Record.CorrectAnswer,
			Correct:       answer != "" && answer == q.Record.CorrectAnswer,
		}
	}
	return result
}
