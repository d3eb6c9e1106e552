package capability

import (
	"bytes"
	"context"
	"io"

	"cmdsrv/internal/command"
	cerrors "cmdsrv/internal/errors"
	"cmdsrv/internal/metrics"
	"cmdsrv/internal/session"
)

// MaxRequestLen is the most bytes read from a client for the path.
const MaxRequestLen = 255

// CommandFile reads a command-file path from the peer, evaluates the
// file, and writes the result text back.
//
// The request is a single read of at most MaxRequestLen bytes with no
// further framing.  The reply is a single write with no terminator.
type CommandFile struct {
	Processor *command.Processor
	Metrics   *metrics.Collector
}

// Handle serves one request on sess.
func (c *CommandFile) Handle(ctx context.Context, sess *session.Session) error {
	buf := make([]byte, MaxRequestLen)
	n, err := sess.Conn.Read(buf)
	c.Metrics.BytesReceived(int64(n))
	if n == 0 {
		if err == nil || cerrors.Is(err, io.EOF) {
			return cerrors.ErrEmptyRequest
		}
		return cerrors.Wrap("read", sess.Peer, err)
	}

	path := RequestPath(buf[:n])
	sess.Logger.Info("received: %s", path)

	if err := ctx.Err(); err != nil {
		return err
	}

	res := c.Processor.Process(path)
	c.Metrics.OperationExecuted(res.Op.String())

	written, err := sess.Conn.Write([]byte(res.Text))
	c.Metrics.BytesSent(int64(written))
	if err != nil {
		return cerrors.Wrap("write", sess.Peer, err)
	}
	if written < len(res.Text) {
		return cerrors.Wrap("write", sess.Peer, cerrors.ErrShortWrite)
	}

	sess.Logger.Info("sent: %s", res.Text)
	return nil
}

// RequestPath turns raw request bytes into a path: the data is cut at
// the first NUL byte and a single trailing newline is removed.
func RequestPath(b []byte) string {
	if len(b) > MaxRequestLen {
		b = b[:MaxRequestLen]
	}
	b = bytes.TrimSuffix(b, []byte{'\n'})
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
