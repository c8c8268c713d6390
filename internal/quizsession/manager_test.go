package quizsession_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/quizgenius/quizgenius/internal/mcq"
	"github.com/quizgenius/quizgenius/internal/questionset"
	"github.com/quizgenius/quizgenius/internal/quizsession"
)

func record(question, answer string) mcq.Record {
	return mcq.Record{
		Question:      question,
		Options:       []string{answer, "wrong1", "wrong2", "wrong3"},
		CorrectAnswer: answer,
		Category:      "General",
		Difficulty:    mcq.DifficultyEasy,
	}
}

func newManager(t *testing.T, questions []mcq.Record) (*quizsession.Manager, questionset.Service) {
	t.Helper()

	sets := questionset.NewService(questionset.NewMemoryStore(), nil)
	if questions != nil {
		if err := sets.Save(context.Background(), "Geo", questions); err != nil {
			t.Fatalf("seeding set failed: %v", err)
		}
	}
	return quizsession.NewManager(sets), sets
}

func TestManager(t *testing.T) {
	ctx := context.Background()

	// Two questions, one answered correctly, one left unanswered: score 1
	// of 2, 50%.
	t.Run("SubmitScoresUnansweredAsIncorrect", func(t *testing.T) {
		mgr, _ := newManager(t, []mcq.Record{record("q1", "right1"), record("q2", "right2")})

		view, err := mgr.Start(ctx, "Geo")
		if err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if _, err := mgr.Answer(ctx, view.ID, 0, "right1"); err != nil {
			t.Fatalf("Answer failed: %v", err)
		}

		result, err := mgr.Submit(ctx, view.ID)
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if result.Score != 1 || result.Total != 2 {
			t.Errorf("score = %d/%d, want 1/2", result.Score, result.Total)
		}
		if result.Percentage != 50.0 {
			t.Errorf("percentage = %v, want 50.0", result.Percentage)
		}
		if !result.Questions[0].Correct || result.Questions[1].Correct {
			t.Errorf("per-question breakdown wrong: %+v", result.Questions)
		}
		if result.Questions[1].YourAnswer != "" {
			t.Errorf("unanswered question reported answer %q", result.Questions[1].YourAnswer)
		}
	})

	t.Run("StartMissingSet", func(t *testing.T) {
		mgr, _ := newManager(t, nil)

		if _, err := mgr.Start(ctx, "nope"); !errors.Is(err, questionset.ErrSetNotFound) {
			t.Errorf("Start on missing set error = %v, want ErrSetNotFound", err)
		}
	})

	t.Run("AnswerOverwrites", func(t *testing.T) {
		mgr, _ := newManager(t, []mcq.Record{record("q1", "right1")})

		view, _ := mgr.Start(ctx, "Geo")
		if _, err := mgr.Answer(ctx, view.ID, 0, "wrong1"); err != nil {
			t.Fatalf("first Answer failed: %v", err)
		}
		if _, err := mgr.Answer(ctx, view.ID, 0, "right1"); err != nil {
			t.Fatalf("second Answer failed: %v", err)
		}

		result, _ := mgr.Submit(ctx, view.ID)
		if result.Score != 1 {
			t.Errorf("score = %d, want 1 (last selection should win)", result.Score)
		}
	})

	t.Run("AnswerValidation", func(t *testing.T) {
		mgr, _ := newManager(t, []mcq.Record{record("q1", "right1")})
		view, _ := mgr.Start(ctx, "Geo")

		if _, err := mgr.Answer(ctx, view.ID, 0, "not an option"); !errors.Is(err, quizsession.ErrUnknownOption) {
			t.Errorf("unknown option error = %v, want ErrUnknownOption", err)
		}
		if _, err := mgr.Answer(ctx, view.ID, 5, "right1"); err == nil {
			t.Error("out-of-range index was accepted")
		}
		if _, err := mgr.Answer(ctx, uuid.New(), 0, "right1"); !errors.Is(err, quizsession.ErrSessionNotFound) {
			t.Errorf("unknown session error = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("AnswerAfterSubmit", func(t *testing.T) {
		mgr, _ := newManager(t, []mcq.Record{record("q1", "right1")})
		view, _ := mgr.Start(ctx, "Geo")
		mgr.Submit(ctx, view.ID)

		if _, err := mgr.Answer(ctx, view.ID, 0, "right1"); !errors.Is(err, quizsession.ErrAlreadySubmitted) {
			t.Errorf("answer after submit error = %v, want ErrAlreadySubmitted", err)
		}
	})

	t.Run("SubmitIsIdempotent", func(t *testing.T) {
		mgr, _ := newManager(t, []mcq.Record{record("q1", "right1")})
		view, _ := mgr.Start(ctx, "Geo")
		mgr.Answer(ctx, view.ID, 0, "right1")

		first, err := mgr.Submit(ctx, view.ID)
		if err != nil {
			t.Fatalf("first Submit failed: %v", err)
		}
		second, err := mgr.Submit(ctx, view.ID)
		if err != nil {
			t.Fatalf("second Submit failed: %v", err)
		}
		if first.Score != second.Score || !first.SubmittedAt.Equal(second.SubmittedAt) {
			t.Errorf("second Submit changed the result: %+v vs %+v", first, second)
		}
	})

	t.Run("ResultBeforeSubmit", func(t *testing.T) {
		mgr, _ := newManager(t, []mcq.Record{record("q1", "right1")})
		view, _ := mgr.Start(ctx, "Geo")

		if _, err := mgr.Result(ctx, view.ID); !errors.Is(err, quizsession.ErrNotSubmitted) {
			t.Errorf("Result before submit error = %v, want ErrNotSubmitted", err)
		}
	})

	// Re-saving the set mid-quiz must not change the running session.
	t.Run("SessionSnapshotsSet", func(t *testing.T) {
		mgr, sets := newManager(t, []mcq.Record{record("q1", "right1")})
		view, _ := mgr.Start(ctx, "Geo")

		if err := sets.Save(ctx, "Geo", []mcq.Record{record("replaced", "x")}); err != nil {
			t.Fatalf("re-saving set failed: %v", err)
		}

		got, _ := mgr.Get(ctx, view.ID)
		if got.Questions[0].Question != "q1" {
			t.Errorf("running session saw the re-saved set: %+v", got.Questions)
		}
	})

	t.Run("End", func(t *testing.T) {
		mgr, _ := newManager(t, []mcq.Record{record("q1", "right1")})
		view, _ := mgr.Start(ctx, "Geo")

		if err := mgr.End(ctx, view.ID); err != nil {
			t.Fatalf("End failed: %v", err)
		}
		if _, err := mgr.Get(ctx, view.ID); !errors.Is(err, quizsession.ErrSessionNotFound) {
			t.Errorf("Get after End error = %v, want ErrSessionNotFound", err)
		}
		if err := mgr.End(ctx, view.ID); !errors.Is(err, quizsession.ErrSessionNotFound) {
			t.Errorf("second End error = %v, want ErrSessionNotFound", err)
		}
	})
}
