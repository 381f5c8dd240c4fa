package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/wikilabels-gadget/internal/config"
	"github.com/JaimeStill/wikilabels-gadget/internal/gadget"
	"github.com/JaimeStill/wikilabels-gadget/pkg/routes"
	"github.com/JaimeStill/wikilabels-gadget/web"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r routes.System, runtime *Runtime, cfg *config.Config) error {
	templates, err := web.NewTemplateSet(cfg.Gadget.BasePath)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	gadgetHandler := gadget.NewHandler(
		runtime.Assets,
		templates,
		web.Layout,
		web.FormPage,
		cfg.Gadget.BasePath,
		runtime.Logger,
	)
	r.RegisterGroup(gadgetHandler.Routes())

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: config.HealthPath,
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: config.ReadyPath,
		Handler: handleReadyCheck(runtime),
	})

	if cfg.Metrics.IsEnabled() {
		r.Handle("GET "+cfg.Metrics.Path, runtime.Metrics.Handler())
	}

	return nil
}

// handleHealthCheck responds with OK status for liveness monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadyCheck(runtime *Runtime) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !runtime.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
