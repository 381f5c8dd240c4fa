package main

import (
	"github.com/JaimeStill/wikilabels-gadget/internal/config"
	"github.com/JaimeStill/wikilabels-gadget/pkg/middleware"
)

// buildMiddleware creates and configures the middleware stack with logging, metrics, and CORS.
func buildMiddleware(runtime *Runtime, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.Logger(runtime.Logger))
	if cfg.Metrics.IsEnabled() {
		middlewareSys.Use(runtime.Metrics.Instrument)
	}
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	return middlewareSys
}
