package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() ClientConfig {
	return ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        "http://backend",
			RequestTimeout: time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "promptkeeper.db"}},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty base url", mutate: func(c *ClientConfig) { c.Adapter.BaseURL = "" }, want: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, want: ErrInvalidAdapterConfigs},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "in-memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() ServerConfig {
		return ServerConfig{
			ClientConfig: validClientConfig(),
			Listener:     ServerListener{Address: "localhost:3005", Transport: TransportStreamable},
			Auth:         AuthConfig{Issuer: "prompt-keeper"},
			Workers:      ServerWorkers{RefreshInterval: time.Minute},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *ServerConfig)
		want   error
	}{
		{name: "valid", mutate: func(c *ServerConfig) {}},
		{name: "stdio without address", mutate: func(c *ServerConfig) {
			c.Listener.Transport = TransportStdio
			c.Listener.Address = ""
		}},
		{name: "sse without address", mutate: func(c *ServerConfig) {
			c.Listener.Transport = TransportSSE
			c.Listener.Address = ""
		}, want: ErrInvalidServerConfigs},
		{name: "unknown transport", mutate: func(c *ServerConfig) { c.Listener.Transport = "websocket" }, want: ErrInvalidServerConfigs},
		{name: "auth without issuer", mutate: func(c *ServerConfig) {
			c.Auth.SignKey = "secret"
			c.Auth.Issuer = ""
		}, want: ErrInvalidAuthConfigs},
		{name: "zero refresh", mutate: func(c *ServerConfig) { c.Workers.RefreshInterval = 0 }, want: ErrInvalidWorkerConfigs},
		{name: "negative backup", mutate: func(c *ServerConfig) { c.Workers.BackupInterval = -time.Second }, want: ErrInvalidWorkerConfigs},
		{name: "client part invalid", mutate: func(c *ServerConfig) { c.Adapter.BaseURL = "" }, want: ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthConfig_Validate(t *testing.T) {
	cfg := AuthConfig{SignKey: "secret", Issuer: "iss", TokenDuration: time.Hour}
	require.NoError(t, cfg.validate())
	assert.True(t, cfg.Enabled())

	cfg.SignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
	assert.False(t, cfg.Enabled())
}

func TestGetServerConfig_FromFlags(t *testing.T) {
	clearEnvVars(t)

	fs := newTestFlagSet(t,
		"-u", "localhost:8080",
		"--transport", "sse",
		"-a", "127.0.0.1:4000",
		"--backup-interval", "1h",
	)

	cfg, err := GetServerConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, TransportSSE, cfg.Listener.Transport)
	assert.Equal(t, "127.0.0.1:4000", cfg.Listener.Address)
	assert.Equal(t, time.Hour, cfg.Workers.BackupInterval)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.False(t, cfg.Auth.Enabled())
}

func TestGetClientConfig_MissingBaseURL(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig(newTestFlagSet(t))
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetAuthConfig_RequiresSignKey(t *testing.T) {
	clearEnvVars(t)

	_, err := GetAuthConfig(newTestFlagSet(t))
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)

	cfg, err := GetAuthConfig(newTestFlagSet(t, "--auth-sign-key", "secret"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAuthIssuer, cfg.Issuer)
	assert.Equal(t, DefaultTokenDuration, cfg.TokenDuration)
}
