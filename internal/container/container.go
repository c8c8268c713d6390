package container

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizgenius/quizgenius/internal/auth"
	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/export"
	"github.com/quizgenius/quizgenius/internal/extract"
	"github.com/quizgenius/quizgenius/internal/generator"
	"github.com/quizgenius/quizgenius/internal/questionset"
	"github.com/quizgenius/quizgenius/internal/quizsession"
)

type Container struct {
	Config *config.Config

	ExtractContainer     *extract.Container
	GeneratorContainer   *generator.Container
	QuestionSetContainer *questionset.Container
	QuizSessionContainer *quizsession.Container
	ExportContainer      *export.Container
}

func New(ctx context.Context) *Container {
	config.Init()
	cfg := config.Load()
	auth.Init()

	var db *gorm.DB
	if cfg.DatabaseDSN != "" {
		if err := config.Connect(ctx, cfg.DatabaseDSN); err != nil {
			config.Logger().WithError(err).Fatal("Failed to connect to archive DB")
		}
		db = config.DB
	}

	extractContainer := extract.NewContainer()
	questionSetContainer := questionset.NewContainer(db)
	generatorContainer := generator.NewContainer(ctx, cfg, extractContainer.Service)
	quizSessionContainer := quizsession.NewContainer(questionSetContainer.Service)
	exportContainer := export.NewContainer(questionSetContainer.Service)

	return &Container{
		Config:               cfg,
		ExtractContainer:     extractContainer,
		GeneratorContainer:   generatorContainer,
		QuestionSetContainer: questionSetContainer,
		QuizSessionContainer: quizSessionContainer,
		ExportContainer:      exportContainer,
	}
}
