// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/co-script/internal/config"
	"github.com/MKhiriev/co-script/internal/logger"
)

// NewLLMClient selects the provider from cfg. A missing API key yields a
// client whose every call fails with [ErrNotConfigured], so the server still
// starts without AI credentials.
func NewLLMClient(ctx context.Context, cfg config.LLM, log *logger.Logger) (LLMClient, error) {
	if cfg.APIKey == "" {
		log.Warn().Str("provider", cfg.Provider).Msg("llm api key is not set, AI features are disabled")
		return unconfiguredClient{}, nil
	}

	switch cfg.Provider {
	case config.ProviderAnthropic, "":
		return NewAnthropicClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout, log), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Provider)
	}
}
