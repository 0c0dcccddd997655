package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig          = "config"
	FlagBaseURL         = "base-url"
	FlagToken           = "token"
	FlagRequestTimeout  = "request-timeout"
	FlagUserAgent       = "user-agent"
	FlagAddress         = "address"
	FlagTransport       = "transport"
	FlagAuthSignKey     = "auth-sign-key"
	FlagAuthIssuer      = "auth-issuer"
	FlagTokenDuration   = "token-duration"
	FlagCORSOrigins     = "cors-origins"
	FlagDSN             = "dsn"
	FlagRefreshInterval = "refresh-interval"
	FlagBackupInterval  = "backup-interval"
	FlagLogLevel        = "log-level"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags defines every configuration flag on fs. The CLI registers
// them as persistent flags of its root command.
//
// Flags:
//
//	-c/--config          json file path with configs
//	-u/--base-url        backend base URL
//	--token              backend bearer token
//	--request-timeout    backend request timeout (e.g. "30s")
//	--user-agent         User-Agent of backend requests
//	-a/--address         MCP server address in format [host]:[port]
//	--transport          MCP transport: stdio, sse or streamable
//	--auth-sign-key      MCP token signing key
//	--auth-issuer        MCP token issuer
//	--token-duration     lifetime of issued MCP tokens
//	--cors-origins       allowed CORS origins
//	-d/--dsn             snapshot database DSN
//	--refresh-interval   published prompts refresh interval
//	--backup-interval    periodic backup interval (0 disables)
//	-l/--log-level       log level
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.StringP(FlagBaseURL, "u", "", "Prompt backend base URL")
	fs.String(FlagToken, "", "Prompt backend bearer token")
	fs.Duration(FlagRequestTimeout, 0, "Backend request timeout (e.g., 30s, 1m)")
	fs.String(FlagUserAgent, "", "User-Agent of backend requests")
	fs.VarP(&NetAddress{}, FlagAddress, "a", "MCP server net address host:port")
	fs.String(FlagTransport, "", "MCP transport: stdio, sse or streamable")
	fs.String(FlagAuthSignKey, "", "MCP token signing key")
	fs.String(FlagAuthIssuer, "", "MCP token issuer")
	fs.Duration(FlagTokenDuration, 0, "Lifetime of issued MCP tokens (e.g., 24h)")
	fs.StringSlice(FlagCORSOrigins, nil, "Allowed CORS origins")
	fs.StringP(FlagDSN, "d", "", "Snapshot database DSN (sqlite path or postgres URL)")
	fs.Duration(FlagRefreshInterval, 0, "Published prompts refresh interval")
	fs.Duration(FlagBackupInterval, 0, "Periodic backup interval, 0 disables it")
	fs.StringP(FlagLogLevel, "l", "", "Log level (debug, info, warn, error)")
}

// parseFlags reads the flags registered by [RegisterFlags] from an already
// parsed fs. Flags absent from fs or left unset produce zero values so lower
// priority sources can fill them.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	r := flagReader{fs: fs}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: r.string(FlagLogLevel),
		},
		Adapter: Adapter{
			BaseURL:        r.string(FlagBaseURL),
			Token:          normalizeToken(r.string(FlagToken)),
			RequestTimeout: r.duration(FlagRequestTimeout),
			UserAgent:      r.string(FlagUserAgent),
		},
		Server: Server{
			Address:       r.string(FlagAddress),
			Transport:     r.string(FlagTransport),
			AuthSignKey:   r.string(FlagAuthSignKey),
			AuthIssuer:    r.string(FlagAuthIssuer),
			TokenDuration: r.duration(FlagTokenDuration),
			CORSOrigins:   r.stringSlice(FlagCORSOrigins),
		},
		Storage: Storage{
			DB: DB{DSN: r.string(FlagDSN)},
		},
		Workers: Workers{
			RefreshInterval: r.duration(FlagRefreshInterval),
			BackupInterval:  r.duration(FlagBackupInterval),
		},
		JSONFilePath: r.string(FlagConfig),
	}

	if r.err != nil {
		return nil, fmt.Errorf("error reading flags: %w", r.err)
	}

	return cfg, nil
}

// flagReader collects the first lookup error so parseFlags stays linear.
type flagReader struct {
	fs  *pflag.FlagSet
	err error
}

func (r *flagReader) changed(name string) bool {
	f := r.fs.Lookup(name)
	return f != nil && f.Changed
}

func (r *flagReader) string(name string) string {
	if !r.changed(name) {
		return ""
	}
	return r.fs.Lookup(name).Value.String()
}

func (r *flagReader) duration(name string) time.Duration {
	if !r.changed(name) {
		return 0
	}
	d, err := r.fs.GetDuration(name)
	if err != nil {
		r.err = errors.Join(r.err, err)
	}
	return d
}

func (r *flagReader) stringSlice(name string) []string {
	if !r.changed(name) {
		return nil
	}
	s, err := r.fs.GetStringSlice(name)
	if err != nil {
		r.err = errors.Join(r.err, err)
	}
	return s
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
