// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound text-generation clients used by the
// AI features.
//
// The primary abstraction is [LLMClient], which decouples the AI service from
// the provider. The package ships an Anthropic Messages API implementation
// over resty, a Gemini implementation over google.golang.org/genai and an
// unconfigured client that fails every call with [ErrNotConfigured].
//
// Provider failures are mapped by mapHTTPError so that callers can use
// [errors.Is] against [ErrUpstream] regardless of the provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/co-script/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/llm_client_mock.go -package=mock

// LLMClient sends a single prompt to a text-generation provider and returns
// the generated text.
type LLMClient interface {
	// Complete returns the provider's text for req. It returns
	// [ErrNotConfigured] when no API key is set and wraps [ErrUpstream] for
	// transport failures and non-2xx provider responses.
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}
