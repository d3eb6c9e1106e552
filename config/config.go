// Package config defines the runtime configuration for cmdsrv and the
// helpers used to parse it from the command line.
package config

import (
	"strconv"
	"strings"
	"time"

	cerrors "cmdsrv/internal/errors"
)

// Config holds every tuneable for a server process.
type Config struct {
	// ── Listener ─────────────────────────────────────────────────────
	Port    int // 0 = ephemeral
	Backlog int

	// ── Requests ─────────────────────────────────────────────────────
	Root    string        // sandbox directory for command files ("" = none)
	Timeout time.Duration // per-connection deadline (0 = none)

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
}

// Default returns a Config populated with the defaults.
func Default() *Config {
	return &Config{
		Port:    DefaultPort,
		Backlog: DefaultBacklog,
		Timeout: DefaultTimeout,
		Verbose: DefaultVerbosity,
	}
}

// ParsePort parses a decimal TCP port.  0 is accepted and requests an
// ephemeral port.
func ParsePort(spec string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(spec))
	if err != nil {
		return 0, &cerrors.ConfigError{
			Field:   "port",
			Value:   spec,
			Message: "not a number",
			Hint:    "use a port between 0 and 65535",
		}
	}
	if port < 0 || port > 65535 {
		return 0, &cerrors.ConfigError{
			Field:   "port",
			Value:   port,
			Message: "out of range 0-65535",
		}
	}
	return port, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return &cerrors.ConfigError{Field: "port", Value: c.Port, Message: "out of range 0-65535"}
	}
	if c.Backlog < 1 {
		return &cerrors.ConfigError{Field: "backlog", Value: c.Backlog, Message: "must be at least 1"}
	}
	if c.Timeout < 0 {
		return &cerrors.ConfigError{Field: "timeout", Value: c.Timeout, Message: "must not be negative"}
	}
	return nil
}
