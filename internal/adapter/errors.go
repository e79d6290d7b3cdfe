package adapter

import "errors"

var (
	// ErrNotConfigured is returned by every call when the provider API key is
	// missing.
	ErrNotConfigured = errors.New("llm provider is not configured")

	// ErrUpstream wraps every provider-side failure.
	ErrUpstream = errors.New("llm provider error")

	ErrUnauthorized       = errors.New("llm provider rejected credentials")
	ErrRateLimited        = errors.New("llm provider rate limit exceeded")
	ErrBadRequest         = errors.New("llm provider rejected request")
	ErrEmptyCompletion    = errors.New("llm provider returned no text")
	ErrUnsupportedBackend = errors.New("unsupported llm provider")
)
