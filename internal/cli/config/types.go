// Package config provides configuration management for the wildlog CLI.
//
// Configuration is layered with koanf: built-in defaults, then wildlog.yaml,
// then WILDLOG_* environment variables, then explicitly set flags.
package config

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/leapstack-labs/wildlog/pkg/adapter"
)

// Default configuration values.
const (
	DefaultStoreType       = "postgres"
	DefaultAddr            = ":8000"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultOutput          = "auto" // Auto-detect: TTY=text, non-TTY=json
)

// Log formats accepted by log_format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// redacted replaces secrets when the configuration is printed.
const redacted = "********"

// dsnPasswordPattern matches the password pair of a key=value DSN, quoted or bare.
var dsnPasswordPattern = regexp.MustCompile(`(?i)(\bpassword\s*=\s*)('(?:[^'\\]|\\.)*'|\S+)`)

// queryPasswordPattern matches a password parameter of a URL query string.
var queryPasswordPattern = regexp.MustCompile(`(?i)((?:^|&)password=)[^&]*`)

// StoreConfig selects and addresses the relational store.
type StoreConfig struct {
	Type       string            `koanf:"type" yaml:"type"`
	DSN        string            `koanf:"dsn" yaml:"dsn,omitempty"`
	Host       string            `koanf:"host" yaml:"host,omitempty"`
	Port       int               `koanf:"port" yaml:"port,omitempty"`
	Database   string            `koanf:"database" yaml:"database,omitempty"`
	User       string            `koanf:"user" yaml:"user,omitempty"`
	Password   string            `koanf:"password" yaml:"password,omitempty"`
	Options    map[string]string `koanf:"options" yaml:"options,omitempty"`
	InitSchema bool              `koanf:"init_schema" yaml:"init_schema"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string        `koanf:"addr" yaml:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// APIConfig holds request handling switches.
type APIConfig struct {
	// ValidateUpdates applies the create-time date/time checks to updates too.
	ValidateUpdates bool `koanf:"validate_updates" yaml:"validate_updates"`
}

// Config holds all CLI configuration options.
type Config struct {
	Store        StoreConfig  `koanf:"store" yaml:"store"`
	Server       ServerConfig `koanf:"server" yaml:"server"`
	API          APIConfig    `koanf:"api" yaml:"api"`
	LogLevel     string       `koanf:"log_level" yaml:"log_level"`
	LogFormat    string       `koanf:"log_format" yaml:"log_format"`
	Verbose      bool         `koanf:"verbose" yaml:"verbose"`
	OutputFormat string       `koanf:"output" yaml:"output"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-" yaml:"-"`
}

// Default returns a Config populated with default values only.
func Default() *Config {
	return &Config{
		Store:        StoreConfig{Type: DefaultStoreType},
		Server:       ServerConfig{Addr: DefaultAddr, ShutdownTimeout: DefaultShutdownTimeout},
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		OutputFormat: DefaultOutput,
	}
}

// ToAdapterConfig converts the store section into adapter settings.
func (c *Config) ToAdapterConfig() adapter.Config {
	cfg := adapter.Config{
		Type:     c.Store.Type,
		DSN:      c.Store.DSN,
		Host:     c.Store.Host,
		Port:     c.Store.Port,
		Database: c.Store.Database,
		Username: c.Store.User,
		Password: c.Store.Password,
		Options:  c.Store.Options,
	}
	if cfg.Type == "sqlite" {
		cfg.Path = c.Store.Database
	}
	return cfg
}

// Level returns the effective slog level. Verbose forces debug.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}

// Redacted returns a copy safe for printing.
func (c *Config) Redacted() *Config {
	out := *c
	if out.Store.Password != "" {
		out.Store.Password = redacted
	}
	out.Store.DSN = redactDSN(c.Store.DSN)
	if len(c.Store.Options) > 0 {
		out.Store.Options = make(map[string]string, len(c.Store.Options))
		for k, v := range c.Store.Options {
			out.Store.Options[k] = v
		}
	}
	return &out
}

// redactDSN masks the password of a URL DSN (postgres://user:pw@host/db),
// including a password query parameter, and of every password= pair in a
// key=value DSN.
func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}

	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return dsnPasswordPattern.ReplaceAllString(dsn, "${1}"+redacted)
	}

	changed := false
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), redacted)
			changed = true
		}
	}
	if masked := queryPasswordPattern.ReplaceAllString(u.RawQuery, "${1}"+redacted); masked != u.RawQuery {
		u.RawQuery = masked
		changed = true
	}
	if !changed {
		return dsn
	}
	return u.String()
}
