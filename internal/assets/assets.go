// Package assets aggregates the gadget's static files into one stylesheet and two scripts.
// Each category has an ordered manifest of asset keys; aggregation concatenates the files
// byte for byte in manifest order and optionally memoizes the result for the process lifetime.
package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JaimeStill/wikilabels-gadget/internal/metrics"
	"github.com/JaimeStill/wikilabels-gadget/pkg/lifecycle"
	"github.com/JaimeStill/wikilabels-gadget/pkg/storage"
	"golang.org/x/sync/singleflight"
)

// System produces the aggregated output for each asset category.
type System interface {
	// Stylesheet returns the concatenated stylesheet manifest.
	Stylesheet(ctx context.Context) (string, error)

	// ApplicationScript returns the concatenated application script manifest.
	ApplicationScript(ctx context.Context) (string, error)

	// LoaderScript returns the concatenated loader script manifest.
	LoaderScript(ctx context.Context) (string, error)

	// Aggregate returns the concatenated output for category.
	// Any unreadable file fails the whole call with ErrResourceUnavailable.
	Aggregate(ctx context.Context, category Category) (string, error)

	// Manifest returns the manifest configured for category.
	Manifest(category Category) (Manifest, bool)

	// Warm aggregates every category, populating the cache when enabled.
	Warm(ctx context.Context) error

	// Start registers the manifest check and the optional warm-up with the
	// lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

type aggregator struct {
	storage   storage.System
	manifests map[Category]Manifest
	cache     *Cache
	fills     singleflight.Group
	warm      bool
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// New creates an aggregator reading manifests from cfg through store.
// Cfg must be finalized. The cache is nil when cfg disables caching.
func New(cfg *Config, store storage.System, m *metrics.Metrics, logger *slog.Logger) System {
	a := &aggregator{
		storage:   store,
		manifests: cfg.BuildManifests(),
		warm:      cfg.WarmEnabled(),
		metrics:   m,
		logger:    logger.With("system", "assets"),
	}
	if cfg.CacheEnabled() {
		a.cache = NewCache()
	}
	return a
}

func (a *aggregator) Start(lc *lifecycle.Coordinator) error {
	a.logger.Info("starting asset system", "cache", a.cache != nil, "warm", a.warm)

	lc.OnStartup(func() {
		if missing := a.verify(lc.Context()); missing > 0 {
			a.logger.Warn("asset manifests reference unavailable files", "missing", missing)
			return
		}
		a.logger.Info("asset manifests verified")
	})

	if !a.warm {
		return nil
	}

	lc.OnStartup(func() {
		if err := a.Warm(lc.Context()); err != nil {
			a.logger.Error("asset warm-up failed", "error", err)
			return
		}
		cached := 0
		if a.cache != nil {
			cached = a.cache.Len()
		}
		a.logger.Info("asset warm-up complete", "cached", cached)
	})

	return nil
}

// verify checks every manifest key against storage and logs the unavailable ones.
// It returns the number of keys that cannot be served.
func (a *aggregator) verify(ctx context.Context) int {
	missing := 0
	for _, category := range Categories() {
		for _, key := range a.manifests[category].files {
			ok, err := a.storage.Exists(ctx, key)
			if err != nil {
				a.logger.Warn("asset check failed", "category", category, "key", key, "error", err)
				missing++
				continue
			}
			if !ok {
				a.logger.Warn("asset missing", "category", category, "key", key)
				missing++
			}
		}
	}
	return missing
}

func (a *aggregator) Stylesheet(ctx context.Context) (string, error) {
	return a.Aggregate(ctx, Stylesheet)
}

func (a *aggregator) ApplicationScript(ctx context.Context) (string, error) {
	return a.Aggregate(ctx, Application)
}

func (a *aggregator) LoaderScript(ctx context.Context) (string, error) {
	return a.Aggregate(ctx, Loader)
}

func (a *aggregator) Manifest(category Category) (Manifest, bool) {
	m, ok := a.manifests[category]
	return m, ok
}

func (a *aggregator) Aggregate(ctx context.Context, category Category) (string, error) {
	if !category.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	manifest := a.manifests[category]

	if a.cache == nil {
		return a.concat(ctx, manifest)
	}

	if output, ok := a.cache.Get(category); ok {
		a.metrics.CacheLookups.WithLabelValues(string(category), "hit").Inc()
		return output, nil
	}
	a.metrics.CacheLookups.WithLabelValues(string(category), "miss").Inc()

	// Concurrent misses share one fill, detached from the caller's cancellation.
	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := a.fills.Do(string(category), func() (any, error) {
		if output, ok := a.cache.Get(category); ok {
			return output, nil
		}
		output, err := a.concat(fillCtx, manifest)
		if err != nil {
			return "", err
		}
		a.cache.Set(category, output)
		return output, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (a *aggregator) Warm(ctx context.Context) error {
	var errs []error
	for _, category := range Categories() {
		if _, err := a.Aggregate(ctx, category); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *aggregator) concat(ctx context.Context, manifest Manifest) (string, error) {
	category := string(manifest.Category())
	start := time.Now()

	var b strings.Builder
	for _, key := range manifest.files {
		data, err := a.storage.Read(ctx, key)
		if err != nil {
			a.metrics.Aggregations.WithLabelValues(category, "error").Inc()
			a.logger.Warn("asset read failed", "category", category, "key", key, "error", err)
			return "", fmt.Errorf("%w: %s: %w", ErrResourceUnavailable, key, err)
		}
		b.Write(data)
	}

	output := b.String()

	a.metrics.Aggregations.WithLabelValues(category, "ok").Inc()
	a.metrics.AggregatedBytes.WithLabelValues(category).Add(float64(len(output)))
	a.metrics.AggregationDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
	a.logger.Debug("assets aggregated",
		"category", category,
		"files", manifest.Len(),
		"bytes", len(output),
	)

	return output, nil
}
