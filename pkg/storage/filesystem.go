package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/JaimeStill/wikilabels-gadget/pkg/lifecycle"
)

// filesystem implements System over a directory on the local filesystem.
// Keys map directly to slash-separated paths relative to basePath.
type filesystem struct {
	basePath    string
	maxFileSize int64
	logger      *slog.Logger
}

// New creates a filesystem storage system.
// The base path is resolved to an absolute path during construction.
// Cfg must be finalized so the max file size is populated.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	absPath, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		basePath:    absPath,
		maxFileSize: cfg.MaxFileSizeBytes(),
		logger:      logger.With("system", "storage"),
	}, nil
}

func (f *filesystem) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting storage system", "base_path", f.basePath)

	lc.OnStartup(func() {
		info, err := os.Stat(f.basePath)
		if err != nil {
			f.logger.Error("storage base path unavailable", "error", err)
			return
		}
		if !info.IsDir() {
			f.logger.Error("storage base path is not a directory", "base_path", f.basePath)
			return
		}
		f.logger.Info("storage base path verified")
	})

	return nil
}

func (f *filesystem) Path(key string) (string, error) {
	return f.fullPath(key)
}

func (f *filesystem) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := f.fullPath(key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, mapError(err, "stat file")
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidKey, key)
	}
	if f.maxFileSize > 0 && info.Size() > f.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, key, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mapError(err, "read file")
	}

	return data, nil
}

func (f *filesystem) Exists(ctx context.Context, key string) (bool, error) {
	path, err := f.fullPath(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, mapError(err, "stat file")
	}

	return info.Mode().IsRegular(), nil
}

func (f *filesystem) fullPath(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	native := filepath.FromSlash(key)
	if !filepath.IsLocal(native) {
		return "", ErrInvalidKey
	}

	return filepath.Join(f.basePath, native), nil
}

func mapError(err error, op string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if errors.Is(err, fs.ErrPermission) {
		return ErrPermissionDenied
	}
	return fmt.Errorf("%s: %w", op, err)
}
