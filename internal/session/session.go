// Package session represents a single connection lifecycle, binding a
// network connection to its peer address and logger.
//
// Nothing in a Session outlives the connection it was created for.
package session

import (
	"net"

	"cmdsrv/util"
)

// Session encapsulates the runtime context for a single connection.
type Session struct {
	Conn   net.Conn
	Peer   string // "IP:port", diagnostics only
	Logger *util.Logger
}

// New creates a Session for conn, resolving the peer address
// best-effort.
func New(conn net.Conn, logger *util.Logger) *Session {
	return &Session{
		Conn:   conn,
		Peer:   util.PeerAddress(conn),
		Logger: logger,
	}
}
