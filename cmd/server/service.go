package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/JaimeStill/wikilabels-gadget/internal/config"
	"github.com/JaimeStill/wikilabels-gadget/internal/routes"
	"github.com/JaimeStill/wikilabels-gadget/internal/server"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	runtime *Runtime
	server  server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	runtime, err := NewRuntime(cfg)
	if err != nil {
		return nil, err
	}

	handler, err := buildHandler(runtime, cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		runtime: runtime,
		server:  server.New(&cfg.Server, handler, cfg.ShutdownTimeoutDuration(), runtime.Logger),
	}, nil
}

func buildHandler(runtime *Runtime, cfg *config.Config) (http.Handler, error) {
	routeSys := routes.New(runtime.Logger)
	if err := registerRoutes(routeSys, runtime, cfg); err != nil {
		return nil, fmt.Errorf("route registration failed: %w", err)
	}

	return buildMiddleware(runtime, cfg).Apply(routeSys.Build()), nil
}

// Start begins all subsystems and returns once startup hooks have completed.
func (s *Service) Start() error {
	s.runtime.Logger.Info("starting service")

	if err := s.runtime.Start(); err != nil {
		return err
	}

	if err := s.server.Start(s.runtime.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.runtime.Lifecycle.WaitForStartup()
	s.runtime.Logger.Info("service started", "addr", s.server.Addr())
	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Service) Shutdown(timeout time.Duration) error {
	s.runtime.Logger.Info("initiating shutdown")

	if err := s.runtime.Lifecycle.Shutdown(timeout); err != nil {
		return err
	}

	s.runtime.Logger.Info("all subsystems shut down successfully")
	return nil
}
