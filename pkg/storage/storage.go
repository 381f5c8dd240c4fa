// Package storage resolves logical asset keys to files under a static root and reads them.
// The root is treated as read-only input supplied by the build or deployment process.
package storage

import (
	"context"

	"github.com/JaimeStill/wikilabels-gadget/pkg/lifecycle"
)

// System defines the read-only operations over the static file root.
type System interface {
	// Path resolves key to an absolute filesystem path under the base path.
	// Returns ErrInvalidKey if the key is empty, absolute, or escapes the root.
	Path(key string) (string, error)

	// Read returns the full contents of the file at key.
	// Returns ErrNotFound, ErrPermissionDenied, ErrInvalidKey, or ErrTooLarge.
	Read(ctx context.Context, key string) ([]byte, error)

	// Exists reports whether key names a readable regular file.
	// Returns (false, nil) if the key does not exist.
	Exists(ctx context.Context, key string) (bool, error)

	// Start registers lifecycle hooks with the coordinator.
	// The filesystem implementation verifies the base directory at startup.
	Start(lc *lifecycle.Coordinator) error
}
