package config

import "time"

// ── Default values ───────────────────────────────────────────────────

const (
	// DefaultPort is the TCP port served when none is given.
	DefaultPort = 12345

	// DefaultBacklog is the listen backlog.  One pending connection is
	// queued while another is served.
	DefaultBacklog = 1

	// DefaultVerbosity is the server's log level (normal).
	DefaultVerbosity = 1

	// DefaultTimeout disables per-connection deadlines.
	DefaultTimeout time.Duration = 0
)
