package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level,omitempty"`
		Version  string `json:"version,omitempty"`
	} `json:"app,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url,omitempty"`
		Token          string   `json:"token,omitempty"`
		RequestTimeout Duration `json:"request_timeout,omitempty"`
		UserAgent      string   `json:"user_agent,omitempty"`
	} `json:"adapter,omitempty"`

	Server struct {
		Address       string   `json:"address,omitempty"`
		Transport     string   `json:"transport,omitempty"`
		AuthSignKey   string   `json:"auth_sign_key,omitempty"`
		AuthIssuer    string   `json:"auth_issuer,omitempty"`
		TokenDuration Duration `json:"token_duration,omitempty"`
		CORSOrigins   []string `json:"cors_origins,omitempty"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn,omitempty"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval,omitempty"`
		BackupInterval  Duration `json:"backup_interval,omitempty"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			Version:  jsonCfg.App.Version,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			Token:          jsonCfg.Adapter.Token,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			UserAgent:      jsonCfg.Adapter.UserAgent,
		},
		Server: Server{
			Address:       jsonCfg.Server.Address,
			Transport:     jsonCfg.Server.Transport,
			AuthSignKey:   jsonCfg.Server.AuthSignKey,
			AuthIssuer:    jsonCfg.Server.AuthIssuer,
			TokenDuration: time.Duration(jsonCfg.Server.TokenDuration),
			CORSOrigins:   jsonCfg.Server.CORSOrigins,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
			BackupInterval:  time.Duration(jsonCfg.Workers.BackupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
