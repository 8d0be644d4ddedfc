// Package main implements the entry point for the BFHL API server, which
// classifies arrays of string tokens into numbers, alphabets and special
// characters over HTTP.
package main

import (
	"context"
	"log"
)

// main is the entry point for the bfhl-api server.
// It loads configuration, sets up logging, wires the classifier into the
// HTTP handler and serves until interrupted.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		app.logger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	return newApplication(cfg, logger)
}
