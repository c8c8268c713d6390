package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/quizgenius/quizgenius/internal/config"
	"github.com/quizgenius/quizgenius/internal/container"
	"github.com/quizgenius/quizgenius/internal/router"
)

func main() {
	c := container.New(context.Background())

	r := router.New(router.RouterConfig{
		GeneratorHandler:   c.GeneratorContainer.Handler,
		ExtractHandler:     c.ExtractContainer.Handler,
		QuestionSetHandler: c.QuestionSetContainer.Handler,
		QuizSessionHandler: c.QuizSessionContainer.Handler,
		ExportHandler:      c.ExportContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	addr := ":" + c.Config.Port
	config.Logger().Infof("Listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		config.Logger().WithError(err).Fatal("Server stopped")
	}
}
