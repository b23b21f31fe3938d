// Package main implements the entry point for the content API server that
// serves the calculator guide corpus: guide lookup, category intros, and
// the sitemap.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/shifang52221/metrickit-content/internal/api"
	"github.com/shifang52221/metrickit-content/internal/config"
	"github.com/shifang52221/metrickit-content/internal/content"
	"github.com/shifang52221/metrickit-content/internal/platform/logger"
	"github.com/shifang52221/metrickit-content/internal/store"
)

// application bundles the initialized components of the server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	contentStore *store.ContentStore
	router       http.Handler
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(); err != nil {
		app.logger.Error("server exited with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and builds the
// content store. A store construction failure means the compiled-in corpus
// is structurally broken; the only correct response is refusing to start.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	contentStore, err := store.New(content.Guides(), content.CategoryIntros())
	if err != nil {
		return nil, fmt.Errorf("failed to build content store: %w", err)
	}

	slog.Info("content store built",
		"guides", len(contentStore.ListGuides()),
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	router := api.NewRouter(contentStore, cfg.Site.BaseURL, appLogger)

	return &application{
		config:       cfg,
		logger:       appLogger,
		contentStore: contentStore,
		router:       router,
	}, nil
}
