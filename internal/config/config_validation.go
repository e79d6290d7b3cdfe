// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	defaultHTTPAddress   = "localhost:8080"
	defaultTokenIssuer   = "co-script"
	defaultTokenDuration = 24 * time.Hour
	defaultAppVersion    = "dev"
)

// applyDefaults fills zero fields that have a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultAppVersion
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = ProviderAnthropic
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = cfg.AnthropicAPIKey
	}
}

// validate checks that the merged [StructuredConfig] can start the server.
// A missing LLM API key is allowed: AI endpoints then report
// "AI not configured".
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration < 0 || cfg.App.PasswordHashCost < 0 {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.LLM.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return ErrInvalidLLMConfigs
	}
	if cfg.LLM.Timeout < 0 {
		return ErrInvalidLLMConfigs
	}

	if cfg.Workers.WatchlistSyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
