package questionset

import (
	"errors"
	"sync"

	"github.com/quizgenius/quizgenius/internal/mcq"
)

var (
	ErrEmptyName      = errors.New("questionset: set name is empty")
	ErrEmptyQuestions = errors.New("questionset: question list is empty")
	ErrSetNotFound    = errors.New("questionset: set not found")
)

// Store is the live mapping from set name to question list. Saves under an
// existing name replace the prior contents entirely.
type Store interface {
	Save(name string, questions []mcq.Record) error
	Load(name string) ([]mcq.Record, bool)
	Delete(name string) bool
	List() map[string][]mcq.Record
}

// MemoryStore keeps sets in process memory for the process lifetime. All
// inputs and outputs are deep-copied so callers never share slices with the
// stored state.
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string][]mcq.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string][]mcq.Record)}
}

func (s *MemoryStore) Save(name string, questions []mcq.Record) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(questions) == 0 {
		return ErrEmptyQuestions
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[name] = mcq.CloneAll(questions)
	return nil
}

func (s *MemoryStore) Load(name string) ([]mcq.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions, ok := s.sets[name]
	if !ok {
		return nil, false
	}
	return mcq.CloneAll(questions), true
}

func (s *MemoryStore) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sets[name]; !ok {
		return false
	}
	delete(s.sets, name)
	return true
}

func (s *MemoryStore) List() map[string][]mcq.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]mcq.Record, len(s.sets))
	for name, questions := range s.sets {
		out[name] = mcq.CloneAll(questions)
	}
	return out
}
