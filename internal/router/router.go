package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quizgenius/quizgenius/internal/auth"
	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/export"
	"github.com/quizgenius/quizgenius/internal/extract"
	"github.com/quizgenius/quizgenius/internal/generator"
	"github.com/quizgenius/quizgenius/internal/questionset"
	"github.com/quizgenius/quizgenius/internal/quizsession"
)

type RouterConfig struct {
	GeneratorHandler   *generator.Handler
	ExtractHandler     *extract.Handler
	QuestionSetHandler *questionset.Handler
	QuizSessionHandler *quizsession.Handler
	ExportHandler      *export.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/generate", generator.Routes(cfg.GeneratorHandler))
		r.Mount("/extract", extract.Routes(cfg.ExtractHandler))
		r.Mount("/sets", questionset.Routes(cfg.QuestionSetHandler))
		r.Mount("/quiz-sessions", quizsession.Routes(cfg.QuizSessionHandler))
		r.Mount("/export", export.Routes(cfg.ExportHandler))

		r.Get("/archive", cfg.QuestionSetHandler.ListArchived)
		r.Get("/sets/{name}/export/json", cfg.ExportHandler.ExportSetJSON)
		r.Get("/sets/{name}/export/pdf", cfg.ExportHandler.ExportSetPDF)
	})

	return r
}
