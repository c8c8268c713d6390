package quizsession

import "github.com/quizgenius/quizgenius/internal/questionset"

type Container struct {
	Handler *Handler
	Manager *Manager
}

func NewContainer(sets questionset.Service) *Container {
	manager := NewManager(sets)
	handler := NewHandler(manager)

	return &Container{
		Handler: handler,
		Manager: manager,
	}
}
