package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing token sign key or negative
	// durations/costs.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLLMConfigs indicates an unknown provider or a negative timeout.
	ErrInvalidLLMConfigs = errors.New("invalid llm configuration")
	// ErrInvalidWorkerConfigs indicates a negative worker interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
