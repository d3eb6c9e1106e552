package config

import (
	"testing"
	"time"

	cerrors "cmdsrv/internal/errors"
)

// ── ParsePort ────────────────────────────────────────────────────────

func TestParsePort(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"12345", 12345, false},
		{"80", 80, false},
		{"0", 0, false},
		{"65535", 65535, false},
		{" 8080 ", 8080, false},
		{"65536", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"80x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePort(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePort(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var ce *cerrors.ConfigError
				if !cerrors.As(err, &ce) || ce.Field != "port" {
					t.Errorf("expected port ConfigError, got %T", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

// ── Config.Validate ──────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *Default(), false},
		{"ephemeral port", Config{Port: 0, Backlog: 1}, false},
		{"with timeout", Config{Port: 80, Backlog: 4, Timeout: time.Second}, false},
		{"port too large", Config{Port: 70000, Backlog: 1}, true},
		{"zero backlog", Config{Port: 80}, true},
		{"negative timeout", Config{Port: 80, Backlog: 1, Timeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != 12345 {
		t.Errorf("port = %d, want 12345", cfg.Port)
	}
	if cfg.Backlog != 1 {
		t.Errorf("backlog = %d, want 1", cfg.Backlog)
	}
	if cfg.Timeout != 0 || cfg.Root != "" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}
