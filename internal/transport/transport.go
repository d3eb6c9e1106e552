// Package transport owns listening-socket creation.  What happens over
// an accepted connection is the capability layer's job.
package transport

import (
	"fmt"
	"net"

	cerrors "cmdsrv/internal/errors"
)

// DefaultBacklog keeps at most one connection pending while another is
// being served.
const DefaultBacklog = 1

// Listener opens the server's listening socket.
type Listener interface {
	Listen() (net.Listener, error)
}

// TCPListener binds an IPv4 TCP socket on all interfaces with
// SO_REUSEADDR set and an explicit accept backlog.
type TCPListener struct {
	Port    int // 0 = ephemeral
	Backlog int // 0 = DefaultBacklog
}

// Addr returns the ":port" address the listener binds.
func (l *TCPListener) Addr() string { return fmt.Sprintf(":%d", l.Port) }

// Listen creates, binds, and starts listening on the socket.
func (l *TCPListener) Listen() (net.Listener, error) {
	if l.Port < 0 || l.Port > 65535 {
		return nil, cerrors.Wrap("listen", l.Addr(), fmt.Errorf("port %d out of range", l.Port))
	}
	backlog := l.Backlog
	if backlog <= 0 {
		backlog = DefaultBacklog
	}
	ln, err := listenTCP4(l.Port, backlog)
	if err != nil {
		return nil, cerrors.Wrap("listen", l.Addr(), err)
	}
	return ln, nil
}
