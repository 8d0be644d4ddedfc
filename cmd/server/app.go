package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bfhl-api/internal/api"
	"github.com/phrazzld/bfhl-api/internal/config"
	"github.com/phrazzld/bfhl-api/internal/domain/classify"
	"github.com/phrazzld/bfhl-api/internal/service"
)

// application holds all the shared application dependencies to simplify management.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Service interfaces
	classifier            classify.Service
	classificationService service.ClassificationService

	// HTTP handlers
	bfhlHandler *api.BFHLHandler
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	params, err := classify.NewParams(cfg.Classifier.SpecialPolicy, cfg.Classifier.PoolCase)
	if err != nil {
		return nil, fmt.Errorf("failed to configure classifier: %w", err)
	}
	app.classifier = classify.NewServiceWithParams(params)
	active := app.classifier.Params()
	logger.Info("Classifier initialized",
		"special_policy", active.SpecialPolicy,
		"pool_case", active.PoolCase)

	app.classificationService, err = service.NewClassificationService(app.classifier, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification service: %w", err)
	}

	app.bfhlHandler, err = api.NewBFHLHandler(
		app.classificationService,
		cfg.Identity,
		cfg.Server.MaxBodyBytes,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bfhl handler: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
