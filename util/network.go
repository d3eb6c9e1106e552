package util

import (
	"fmt"
	"net"
	"strconv"
)

// UnknownPeer is reported when a connection's remote address cannot
// be determined.
const UnknownPeer = "unknown"

// PeerAddress returns the remote "IP:port" of conn for diagnostics.
// It never fails; an unresolvable peer is reported as [UnknownPeer].
func PeerAddress(conn net.Conn) string {
	if conn == nil {
		return UnknownPeer
	}
	addr := conn.RemoteAddr()
	if addr == nil {
		return UnknownPeer
	}
	if ta, ok := addr.(*net.TCPAddr); ok {
		ip := ta.IP
		if v4 := ip.To4(); v4 != nil {
			ip = v4
		}
		return FormatAddr(ip.String(), ta.Port)
	}
	if s := addr.String(); s != "" {
		return s
	}
	return UnknownPeer
}

// FormatAddr returns "host:port".
func FormatAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// FindFreePort returns an available TCP port on 127.0.0.1.
func FindFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("finding free port: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
