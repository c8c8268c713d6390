package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/mcq"
)

type Service interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

type service struct {
	provider Provider
}

// NewService builds the pipeline. A nil provider models the unconfigured
// state: Generate then fails fast with ErrMissingAPIKey.
func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) Generate(ctx context.Context, req Request) (*Result, error) {
	log := config.WithContext(ctx)

	if s.provider == nil {
		return nil, ErrMissingAPIKey
	}

	prompt := BuildPrompt(req)

	// Single synchronous call, no retry. Robustness to upstream flakiness
	// is deliberately out of scope.
	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("Model call failed")
		return nil, fmt.Errorf("provider call: %w", err)
	}

	clean := StripFences(raw)

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		log.WithError(err).WithField("raw", raw).Error("Model output is not a JSON array")
		return nil, &ParseError{Raw: raw, Err: err}
	}

	result := &Result{Questions: []mcq.Record{}}
	for i, item := range items {
		var rec mcq.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			result.Rejected = append(result.Rejected, Rejection{Index: i, Reason: fmt.Sprintf("malformed item: %v", err), Raw: item})
			log.WithError(err).Warnf("Dropping malformed generated item %d", i)
			continue
		}
		if d, err := mcq.ParseDifficulty(string(rec.Difficulty)); err == nil {
			rec.Difficulty = d
		}
		if err := rec.Validate(); err != nil {
			result.Rejected = append(result.Rejected, Rejection{Index: i, Reason: err.Error(), Raw: item})
			log.WithError(err).Warnf("Dropping invalid generated item %d", i)
			continue
		}
		result.Questions = append(result.Questions, rec)
	}

	log.Infof("Generated %d questions (%d dropped)", len(result.Questions), len(result.Rejected))
	return result, nil
}
