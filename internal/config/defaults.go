package config

import "time"

// Default values applied when no other source sets a field.
const (
	DefaultLogLevel        = "info"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultUserAgent       = "promptctl"
	DefaultServerAddress   = "localhost:3005"
	DefaultTransport       = TransportStdio
	DefaultAuthIssuer      = "prompt-keeper"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultDSN             = "promptkeeper.db"
	DefaultRefreshInterval = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Server: Server{
			Address:       DefaultServerAddress,
			Transport:     DefaultTransport,
			AuthIssuer:    DefaultAuthIssuer,
			TokenDuration: DefaultTokenDuration,
			CORSOrigins:   []string{"*"},
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Workers: Workers{
			RefreshInterval: DefaultRefreshInterval,
		},
	}
}
