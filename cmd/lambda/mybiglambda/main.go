package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"mybiglambda/internal/config"
	"mybiglambda/pkg/server"
)

var container *server.Container

// init runs once per execution environment, before any invocation is served
func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger := config.NewLogger(cfg.Log)
	ctx := context.Background()

	provider, err := server.NewProvider(ctx, cfg, logger)
	if err != nil {
		panic("Failed to create secrets provider: " + err.Error())
	}

	container, err = server.NewContainer(ctx, cfg, provider, logger)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	awslambda.Start(container.SampleHandler.HandleInvoke)
}
