package generator

import (
	"context"

	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/extract"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(ctx context.Context, cfg *config.Config, extractor extract.Service) *Container {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		// Generation stays reachable and fails fast per request; the rest
		// of the service keeps working without a credential.
		config.Logger().WithError(err).Warn("Generator provider not configured")
		provider = nil
	}

	service := NewService(provider)
	handler := NewHandler(service, extractor)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
