package assets

import "errors"

var (
	// ErrResourceUnavailable indicates a manifest file could not be resolved or read.
	// It wraps the underlying storage error.
	ErrResourceUnavailable = errors.New("asset resource unavailable")

	// ErrUnknownCategory indicates a category with no manifest.
	ErrUnknownCategory = errors.New("unknown asset category")
)
