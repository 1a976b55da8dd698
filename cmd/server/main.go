// Package main implements the entry point for the NoteSmart server,
// which manages notes and spaced repetition flashcards and provides
// LLM integration for card generation.
package main

import (
	"context"
	"log"

	"github.com/giahuy0968/NoteSmart/internal/config"
	"github.com/giahuy0968/NoteSmart/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg.Server)
	logg.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, logg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
