package export

import "github.com/quizgenius/quizgenius/internal/questionset"

type Container struct {
	Handler *Handler
}

func NewContainer(sets questionset.Service) *Container {
	return &Container{
		Handler: NewHandler(sets),
	}
}
