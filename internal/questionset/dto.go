package questionset

import "github.com/quizgenius/quizgenius/internal/mcq"

type SaveSetDTO struct {
	Questions []mcq.Record `json:"questions"`
}

type SetResponse struct {
	Name      string       `json:"name"`
	Questions []mcq.Record `json:"questions"`
}
