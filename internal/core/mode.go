// Package core is the orchestration layer.  It composes the transport,
// capability, and session layers into a running server and provides a
// builder that assembles it from a Config.
//
// Architecture layers (bottom → top):
//
//	transport  →  capability  →  session  →  core  →  cmd (CLI)
package core

import "context"

// Mode represents a complete operational mode that owns its lifecycle
// from socket creation to teardown.
type Mode interface {
	Run(ctx context.Context) error
}
