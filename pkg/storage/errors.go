package storage

import "errors"

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrPermissionDenied indicates insufficient permissions to access the key.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey indicates the key is malformed or escapes the base path.
	// This includes empty keys, absolute paths, path traversal, and directories.
	ErrInvalidKey = errors.New("storage: invalid key")

	// ErrTooLarge indicates the file exceeds the configured max_file_size.
	ErrTooLarge = errors.New("storage: file too large")
)
