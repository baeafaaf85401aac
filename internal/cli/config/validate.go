package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/wildlog/pkg/adapter"
	"github.com/leapstack-labs/wildlog/pkg/dialect"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Store.Type == "" {
		return fmt.Errorf("store.type is required")
	}
	if !adapter.IsRegistered(c.Store.Type) {
		return &adapter.UnknownAdapterError{
			Type:      c.Store.Type,
			Available: adapter.ListAdapters(),
		}
	}
	if _, ok := dialect.Get(c.Store.Type); !ok {
		return fmt.Errorf("no SQL dialect registered for store.type %q\nAvailable dialects: %v", c.Store.Type, dialect.List())
	}

	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative, got %s", c.Server.ShutdownTimeout)
	}

	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log_level %q: use debug, info, warn or error", c.LogLevel)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log_format %q: use text or json", c.LogFormat)
	}

	switch c.OutputFormat {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("invalid output %q: use auto, text or json", c.OutputFormat)
	}

	return nil
}
