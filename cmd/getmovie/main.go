package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/KillianGolds/ds-serverlessREST-lab/internal/app"
)

func main() {
	// Built once per container (cold start) and reused by every invocation.
	a, err := app.New(context.Background())
	if err != nil {
		slog.Error("Cannot start getmovie", "error", err)
		os.Exit(1)
	}

	lambda.Start(func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
		defer a.Close()
		return a.Handler.Handle(ctx, request)
	})
}
