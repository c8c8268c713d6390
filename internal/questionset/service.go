package questionset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/mcq"
)

// ErrArchiveDisabled means no archive database is configured.
var ErrArchiveDisabled = errors.New("questionset: archive storage not configured")

type Service interface {
	Save(ctx context.Context, name string, questions []mcq.Record) error
	Load(ctx context.Context, name string) ([]mcq.Record, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) map[string][]mcq.Record

	// AddQuestion is the manual-entry path: the record is validated with
	// the same invariant generated questions pass through.
	AddQuestion(ctx context.Context, name string, question mcq.Record) error

	Archive(ctx context.Context, name string) error
	Restore(ctx context.Context, name string) error
	ListArchived(ctx context.Context) ([]*ArchivedSet, error)
}

type service struct {
	store   Store
	archive ArchiveRepository
}

// NewService wires the live store and the optional archive repository
// (nil when no database is configured).
func NewService(store Store, archive ArchiveRepository) Service {
	return &service{store: store, archive: archive}
}

func (s *service) Save(ctx context.Context, name string, questions []mcq.Record) error {
	log := config.WithContext(ctx)

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	if err := s.store.Save(name, questions); err != nil {
		return err
	}

	log.Infof("Saved set %q with %d questions", name, len(questions))
	return nil
}

func (s *service) Load(ctx context.Context, name string) ([]mcq.Record, error) {
	questions, ok := s.store.Load(name)
	if !ok {
		return nil, ErrSetNotFound
	}
	return questions, nil
}

func (s *service) Delete(ctx context.Context, name string) error {
	if !s.store.Delete(name) {
		return ErrSetNotFound
	}
	config.WithContext(ctx).Infof("Deleted set %q", name)
	return nil
}

func (s *service) List(ctx context.Context) map[string][]mcq.Record {
	return s.store.List()
}

func (s *service) AddQuestion(ctx context.Context, name string, question mcq.Record) error {
	if err := question.Validate(); err != nil {
		return err
	}

	questions, _ := s.store.Load(name)
	questions = append(questions, question)
	return s.store.Save(name, questions)
}

func (s *service) Archive(ctx context.Context, name string) error {
	log := config.WithContext(ctx)

	if s.archive == nil {
		return ErrArchiveDisabled
	}
	questions, ok := s.store.Load(name)
	if !ok {
		return ErrSetNotFound
	}

	payload, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	if err := s.archive.Upsert(&ArchivedSet{Name: name, Questions: string(payload)}); err != nil {
		log.WithError(err).Errorf("Failed to archive set %q", name)
		return err
	}

	log.Infof("Archived set %q", name)
	return nil
}

func (s *service) Restore(ctx context.Context, name string) error {
	log := config.WithContext(ctx)

	if s.archive == nil {
		return ErrArchiveDisabled
	}
	set, err := s.archive.FindByName(name)
	if err != nil {
		return err
	}
	if set == nil {
		return ErrSetNotFound
	}

	var questions []mcq.Record
	if err := json.Unmarshal([]byte(set.Questions), &questions); err != nil {
		return fmt.Errorf("unmarshal archived questions: %w", err)
	}
	if err := s.store.Save(name, questions); err != nil {
		return err
	}

	log.Infof("Restored set %q with %d questions", name, len(questions))
	return nil
}

func (s *service) ListArchived(ctx context.Context) ([]*ArchivedSet, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.List()
}
