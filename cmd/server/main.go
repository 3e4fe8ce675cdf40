package main

import (
	"context"
	"log/slog"
	"os"

	"go-content-api/internal/app"
	"go-content-api/internal/logger"
)

func main() {
	// Replaced once config is loaded; covers config errors.
	slog.SetDefault(logger.New(os.Stdout, "info", "text"))

	application, err := app.New(context.Background())
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}
