package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following the env and
// envPrefix tags of [StructuredConfig], e.g. Adapter.BaseURL is read from
// ADAPTER_BASE_URL and Server.CORSOrigins from a comma separated
// SERVER_CORS_ORIGINS.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Adapter.Token = normalizeToken(cfg.Adapter.Token)

	return nil
}

// normalizeToken accepts a backend token copied together with its
// "Bearer " scheme, as the admin front-end stores it.
func normalizeToken(token string) string {
	token = strings.TrimSpace(token)
	if len(token) > len("bearer ") && strings.EqualFold(token[:len("bearer ")], "bearer ") {
		token = strings.TrimSpace(token[len("bearer "):])
	}
	return token
}
