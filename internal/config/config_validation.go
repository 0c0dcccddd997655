// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every command. Group specific rules live in the
// consumer views.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.ClientConfig.validate(); err != nil {
		return err
	}

	switch cfg.Listener.Transport {
	case TransportStdio:
	case TransportSSE, TransportStreamable:
		if cfg.Listener.Address == "" {
			return fmt.Errorf("%w: empty address for %s transport", ErrInvalidServerConfigs, cfg.Listener.Transport)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidServerConfigs, cfg.Listener.Transport)
	}

	if cfg.Auth.Enabled() && cfg.Auth.Issuer == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 || cfg.Workers.BackupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *AuthConfig) validate() error {
	if cfg.SignKey == "" || cfg.Issuer == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
