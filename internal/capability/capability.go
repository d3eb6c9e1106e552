// Package capability defines what happens over an accepted
// connection.  A Capability operates on a Session rather than a raw
// net.Conn, which keeps it testable over net.Pipe.
package capability

import (
	"context"

	"cmdsrv/internal/session"
)

// Capability handles a single connection.  It must not close the
// connection; the caller owns it.  A returned error is per-connection
// and never stops the server.
type Capability interface {
	Handle(ctx context.Context, sess *session.Session) error
}
