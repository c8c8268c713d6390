package questionset_test

import (
	"errors"
	"testing"

	"github.com/quizgenius/quizgenius/internal/mcq"
	"github.com/quizgenius/quizgenius/internal/questionset"
)

func question(text string) mcq.Record {
	return mcq.Record{
		Question:      text,
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
		Category:      "General",
		Difficulty:    mcq.DifficultyEasy,
	}
}

func TestMemoryStore(t *testing.T) {
	t.Run("SaveAndLoad", func(t *testing.T) {
		store := questionset.NewMemoryStore()

		if err := store.Save("Geo", []mcq.Record{question("q1"), question("q2")}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, ok := store.Load("Geo")
		if !ok || len(got) != 2 {
			t.Fatalf("Load = %v, %v; want 2 questions", got, ok)
		}
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		store := questionset.NewMemoryStore()
		if err := store.Save("", []mcq.Record{question("q")}); !errors.Is(err, questionset.ErrEmptyName) {
			t.Errorf("Save(\"\") error = %v, want ErrEmptyName", err)
		}
	})

	t.Run("EmptyQuestionsRejected", func(t *testing.T) {
		store := questionset.NewMemoryStore()
		if err := store.Save("Geo", nil); !errors.Is(err, questionset.ErrEmptyQuestions) {
			t.Errorf("Save with no questions error = %v, want ErrEmptyQuestions", err)
		}
	})

	// Re-saving under the same name fully replaces the prior contents.
	t.Run("OverwriteReplacesContents", func(t *testing.T) {
		store := questionset.NewMemoryStore()

		if err := store.Save("Geo", []mcq.Record{question("q1"), question("q2"), question("q3")}); err != nil {
			t.Fatalf("first Save failed: %v", err)
		}
		if err := store.Save("Geo", []mcq.Record{question("other")}); err != nil {
			t.Fatalf("second Save failed: %v", err)
		}

		got, ok := store.Load("Geo")
		if !ok || len(got) != 1 || got[0].Question != "other" {
			t.Fatalf("Load after overwrite = %v; want exactly the one new question", got)
		}
	})

	t.Run("LoadMissing", func(t *testing.T) {
		store := questionset.NewMemoryStore()
		if _, ok := store.Load("nope"); ok {
			t.Error("Load of a missing set reported ok")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store := questionset.NewMemoryStore()
		store.Save("Geo", []mcq.Record{question("q")})

		if !store.Delete("Geo") {
			t.Error("Delete of an existing set returned false")
		}
		if store.Delete("Geo") {
			t.Error("Delete of a deleted set returned true")
		}
	})

	t.Run("List", func(t *testing.T) {
		store := questionset.NewMemoryStore()
		store.Save("A", []mcq.Record{question("q1")})
		store.Save("B", []mcq.Record{question("q2"), question("q3")})

		sets := store.List()
		if len(sets) != 2 || len(sets["B"]) != 2 {
			t.Fatalf("List = %v; want 2 sets with B holding 2 questions", sets)
		}
	})

	// The store must hand out copies: mutating a loaded slice or the input
	// slice after saving must not affect stored state.
	t.Run("CopyIsolation", func(t *testing.T) {
		store := questionset.NewMemoryStore()

		input := []mcq.Record{question("q")}
		store.Save("Geo", input)
		input[0].Options[0] = "mutated"

		got, _ := store.Load("Geo")
		if got[0].Options[0] != "a" {
			t.Fatal("stored set shares option slices with the caller's input")
		}

		got[0].Question = "mutated"
		again, _ := store.Load("Geo")
		if again[0].Question != "q" {
			t.Fatal("loaded set shares records with the stored state")
		}
	})
}
