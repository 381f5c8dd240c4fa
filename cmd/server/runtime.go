package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/wikilabels-gadget/internal/assets"
	"github.com/JaimeStill/wikilabels-gadget/internal/config"
	"github.com/JaimeStill/wikilabels-gadget/internal/metrics"
	"github.com/JaimeStill/wikilabels-gadget/pkg/lifecycle"
	"github.com/JaimeStill/wikilabels-gadget/pkg/logging"
	"github.com/JaimeStill/wikilabels-gadget/pkg/storage"
)

// Runtime holds the long-lived systems shared by every handler.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Storage   storage.System
	Assets    assets.System
}

// NewRuntime initializes the runtime systems without starting them.
func NewRuntime(cfg *config.Config) (*Runtime, error) {
	logger := logging.New(&cfg.Logging, os.Stdout)
	m := metrics.New()

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Runtime{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Metrics:   m,
		Storage:   store,
		Assets:    assets.New(&cfg.Assets, store, m, logger),
	}, nil
}

// Start registers every runtime system with the lifecycle coordinator.
func (r *Runtime) Start() error {
	if err := r.Storage.Start(r.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	if err := r.Assets.Start(r.Lifecycle); err != nil {
		return fmt.Errorf("assets start failed: %w", err)
	}
	return nil
}
