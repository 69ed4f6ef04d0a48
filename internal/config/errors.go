package config

import "errors"

// Validation errors returned by [StructuredConfig.ValidateServer] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty database DSN or history cache path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCompletionConfigs indicates invalid completion API settings
	// (for example, missing endpoint URL or model name).
	ErrInvalidCompletionConfigs = errors.New("invalid completion API configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrNegativeDuration indicates a negative timeout or token duration
	// supplied by one of the configuration sources.
	ErrNegativeDuration = errors.New("durations must not be negative")
)
