package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ServerListener holds the MCP server transport settings.
type ServerListener struct {
	// Address is the host:port the HTTP transports listen on.
	Address string
	// Transport is one of stdio, sse or streamable.
	Transport string
	// CORSOrigins lists the allowed origins on HTTP transports.
	CORSOrigins []string
}

// ServerWorkers contains background job settings of `serve`.
type ServerWorkers struct {
	// RefreshInterval defines how often published prompts are re-synced.
	RefreshInterval time.Duration
	// BackupInterval defines how often a snapshot is stored; zero disables it.
	BackupInterval time.Duration
}

// AuthConfig holds the settings used to sign and verify MCP access tokens.
type AuthConfig struct {
	// SignKey is the HS256 secret. Auth is disabled when empty.
	SignKey string
	// Issuer is the "iss" claim.
	Issuer string
	// TokenDuration is the lifetime of issued tokens.
	TokenDuration time.Duration
}

// Enabled reports whether bearer auth should be enforced.
func (a AuthConfig) Enabled() bool {
	return a.SignKey != ""
}

// ServerConfig is the configuration view of `promptctl serve`.
type ServerConfig struct {
	// ClientConfig carries the backend and storage settings the server
	// forwards calls and snapshots to.
	ClientConfig
	// Listener contains transport settings.
	Listener ServerListener
	// Auth contains token verification settings.
	Auth AuthConfig
	// Workers contains background job settings.
	Workers ServerWorkers
}

// GetServerConfig builds and validates the `serve` config view.
func GetServerConfig(fs *pflag.FlagSet) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		ClientConfig: *newClientConfig(cfg),
		Listener: ServerListener{
			Address:     cfg.Server.Address,
			Transport:   cfg.Server.Transport,
			CORSOrigins: cfg.Server.CORSOrigins,
		},
		Auth: newAuthConfig(cfg),
		Workers: ServerWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
			BackupInterval:  cfg.Workers.BackupInterval,
		},
	}

	return serverCfg, serverCfg.validate()
}

// GetAuthConfig builds and validates the config view of `promptctl token`.
// Unlike the server view it requires a sign key.
func GetAuthConfig(fs *pflag.FlagSet) (*AuthConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	authCfg := newAuthConfig(cfg)

	return &authCfg, authCfg.validate()
}

func newAuthConfig(cfg *StructuredConfig) AuthConfig {
	return AuthConfig{
		SignKey:       cfg.Server.AuthSignKey,
		Issuer:        cfg.Server.AuthIssuer,
		TokenDuration: cfg.Server.TokenDuration,
	}
}
