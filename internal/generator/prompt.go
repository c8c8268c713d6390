package generator

import (
	"fmt"
	"strings"
)

const (
	MinQuestions = 1
	MaxQuestions = 20

	// DefaultCategory is substituted into the prompt when the caller leaves
	// the category empty; the model then infers one from the text.
	DefaultCategory = "General"
)

const systemPrompt = `You are a professional teacher. Generate %d Multiple Choice Questions (MCQs) based on the following text.
Each question should have:
- A clear question text.
- Exactly 4 options (A, B, C, D) provided as a list of strings.
- The correct answer as a string, which must be one of the provided options.
- A category for the question.
- A difficulty level (Easy, Medium, or Hard).

Ensure the output is a JSON array of objects, strictly adhering to the following schema.
Do NOT include any additional text or markdown outside the JSON array.

JSON Schema:
[
  {
    "question": "string",
    "options": ["string", "string", "string", "string"],
    "correct_answer": "string",
    "category": "string",
    "difficulty": "string"
  }
]

Text to generate questions from:
%s

Number of questions to generate: %d
Desired Difficulty: %s
Desired Category: %s (If 'General', infer a relevant category from the text.)`

// BuildPrompt renders the generation instruction. The question count is
// clamped to [MinQuestions, MaxQuestions].
func BuildPrompt(req Request) string {
	n := req.NumQuestions
	if n < MinQuestions {
		n = MinQuestions
	}
	if n > MaxQuestions {
		n = MaxQuestions
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultCategory
	}

	return fmt.Sprintf(systemPrompt, n, req.Text, n, req.Difficulty, category)
}

// StripFences removes exactly one layer of markdown code-fence wrapping
// around a JSON payload. Unfenced input passes through unchanged, so the
// function is idempotent.
func StripFences(s string) string {
	t := strings.TrimSpace(s)
	if len(t) < 6 || !strings.HasPrefix(t, "```") || !strings.HasSuffix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimPrefix(t, "json")
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}
