// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

package config

import "strings"

// validate checks invariants shared by every consumer of the merged
// [StructuredConfig]. Role-specific requirements are checked separately:
// the server entrypoint calls [StructuredConfig.ValidateServer] and the
// client builds a [ClientConfig] with its own validation.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 ||
		cfg.Server.RequestTimeout < 0 ||
		cfg.Completion.Timeout < 0 ||
		cfg.Adapter.RequestTimeout < 0 {
		return ErrNegativeDuration
	}

	return nil
}

// ValidateServer checks that all settings required to run the chatlog server
// are present in the merged configuration.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Completion.URL == "" || cfg.Completion.Model == "" || cfg.Completion.Timeout == 0 {
		return ErrInvalidCompletionConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.CachePath == "" || strings.Contains(cfg.Storage.CachePath, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
