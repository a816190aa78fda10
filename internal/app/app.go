package app

import (
	"fmt"
	"net/http"
	"os"

	"github.com/riskibarqy/fpl-dashboard/external/fpl"
	"github.com/riskibarqy/fpl-dashboard/internal/config"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/palette"
	"github.com/riskibarqy/fpl-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fpl-dashboard/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	catalog, err := loadPaletteCatalog(cfg.PaletteCatalogPath)
	if err != nil {
		return nil, err
	}

	fplClient := fpl.NewClient(fpl.ClientConfig{
		BaseURL:    cfg.FPLBaseURL,
		Timeout:    cfg.FPLTimeout,
		MaxRetries: cfg.FPLMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
		},
	})

	datasetSvc := usecase.NewDatasetService(fplClient, cfg.CacheTTL, logger)
	viewSvc, err := usecase.NewViewService(datasetSvc, catalog, usecase.ViewServiceConfig{
		CacheSize:      cfg.ViewCacheSize,
		DefaultPalette: cfg.DefaultPalette,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("build view service: %w", err)
	}

	handler := httpapi.NewHandler(viewSvc, datasetSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// loadPaletteCatalog reads a TOML catalog from path, or the embedded one when path is empty.
func loadPaletteCatalog(path string) (*palette.Catalog, error) {
	if path == "" {
		catalog, err := palette.Builtin()
		if err != nil {
			return nil, fmt.Errorf("load builtin palettes: %w", err)
		}
		return catalog, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette catalog: %w", err)
	}
	catalog, err := palette.ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("parse palette catalog %s: %w", path, err)
	}
	return catalog, nil
}
