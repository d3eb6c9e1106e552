//go:build !unix

package transport

import (
	"context"
	"fmt"
	"net"
)

// listenTCP4 falls back to the standard listener; the backlog is left
// to the operating system on these platforms.
func listenTCP4(port, _ int) (net.Listener, error) {
	var lc net.ListenConfig
	return lc.Listen(context.Background(), "tcp4", fmt.Sprintf(":%d", port))
}
