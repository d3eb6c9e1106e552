package core

import (
	"context"
	"io"
	"net"
	"time"

	"cmdsrv/internal/capability"
	cerrors "cmdsrv/internal/errors"
	"cmdsrv/internal/metrics"
	"cmdsrv/internal/session"
	"cmdsrv/internal/transport"
	"cmdsrv/util"
)

// ServeMode accepts connections one at a time and runs the capability
// on each.  The next Accept happens only after the previous connection
// has been handled and closed, so a slow client stalls everyone else;
// set Timeout to bound that.
type ServeMode struct {
	Listener   transport.Listener
	Timeout    time.Duration
	Capability capability.Capability
	Metrics    *metrics.Collector
	Logger     *util.Logger

	// Resources are closed when Run returns.
	Resources []io.Closer
}

// Run listens and serves until ctx is cancelled or Accept fails.
// Listener setup and accept failures are returned; per-connection
// failures are logged and do not stop the loop.
func (m *ServeMode) Run(ctx context.Context) error {
	defer m.release()

	ln, err := m.Listener.Listen()
	if err != nil {
		return err
	}
	defer ln.Close()

	m.Logger.Info("listening on %s", ln.Addr())
	defer func() { m.Logger.Verbose("stats: %s", m.Metrics.JSON()) }()

	// Shut the listener down when the context expires.
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil && cerrors.IsClosed(err) {
				return nil
			}
			werr := cerrors.Wrap("accept", ln.Addr().String(), err)
			m.Logger.Error("%v", werr)
			return werr
		}
		m.serveConn(ctx, conn)
	}
}

func (m *ServeMode) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	m.Metrics.ConnectionOpened()
	defer m.Metrics.ConnectionClosed()

	sess := session.New(conn, m.Logger)
	m.Logger.Info("received connection from %s", sess.Peer)

	if m.Timeout > 0 {
		conn.SetDeadline(time.Now().Add(m.Timeout)) //nolint:errcheck
	}
	// Unblock a pending read or write on shutdown.
	stop := context.AfterFunc(ctx, func() { conn.SetDeadline(time.Now()) }) //nolint:errcheck
	defer stop()

	err := m.Capability.Handle(ctx, sess)
	switch {
	case err == nil:
	case cerrors.Is(err, cerrors.ErrEmptyRequest):
		m.Logger.Info("connection closed by %s", sess.Peer)
	case cerrors.IsTimeout(err) && ctx.Err() == nil:
		m.Metrics.RecordError(err.Error())
		m.Logger.Warn("connection %s timed out: %v", sess.Peer, err)
	default:
		m.Metrics.RecordError(err.Error())
		m.Logger.Warn("connection %s: %v", sess.Peer, err)
	}
}

func (m *ServeMode) release() {
	for _, r := range m.Resources {
		if err := r.Close(); err != nil {
			m.Logger.Debug("release: %v", err)
		}
	}
}
