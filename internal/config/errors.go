package config

import "errors"

// Sentinel kinds for configuration errors, checkable via errors.Is.
var (
	// ErrLoadConfig wraps failures reading or unmarshaling config sources.
	ErrLoadConfig = errors.New("load config failed")

	// ErrInvalidConfig wraps validation failures after loading.
	ErrInvalidConfig = errors.New("invalid config")
)
