package capability

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cmdsrv/internal/command"
	cerrors "cmdsrv/internal/errors"
	"cmdsrv/internal/metrics"
	"cmdsrv/internal/session"
)

func newCommandFile(t *testing.T) *CommandFile {
	t.Helper()
	p, err := command.NewProcessor("", nil)
	if err != nil {
		t.Fatal(err)
	}
	return &CommandFile{Processor: p, Metrics: metrics.New()}
}

// roundTrip sends request over a net.Pipe and returns the reply and
// the handler's error.
func roundTrip(t *testing.T, c *CommandFile, request string) (string, error) {
	t.Helper()
	client, server := net.Pipe()
	defer client.Close()

	done := make(chan error, 1)
	go func() {
		err := c.Handle(context.Background(), session.New(server, nil))
		server.Close()
		done <- err
	}()

	client.SetDeadline(time.Now().Add(2 * time.Second)) //nolint:errcheck
	if _, err := client.Write([]byte(request)); err != nil {
		t.Fatalf("write request: %v", err)
	}
	reply, err := io.ReadAll(client)
	if err != nil {
		t.Fatalf("read reply: %v", err)
	}
	return string(reply), <-done
}

func TestCommandFile_Handle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cmd1")
	if err := os.WriteFile(path, []byte("add\n3\n4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newCommandFile(t)
	for _, req := range []string{path, path + "\n"} {
		reply, err := roundTrip(t, c, req)
		if err != nil {
			t.Fatalf("Handle(%q): %v", req, err)
		}
		if reply != "7" {
			t.Errorf("Handle(%q) reply = %q, want %q", req, reply, "7")
		}
	}

	if got := c.Metrics.Operations("addition"); got != 2 {
		t.Errorf("addition count = %d, want 2", got)
	}
	if c.Metrics.TotalBytesOut() != 2 {
		t.Errorf("bytes out = %d, want 2", c.Metrics.TotalBytesOut())
	}
}

func TestCommandFile_MissingFile(t *testing.T) {
	reply, err := roundTrip(t, newCommandFile(t), "/nonexistent\n")
	if err != nil {
		t.Fatal(err)
	}
	if reply != "No such file /nonexistent" {
		t.Errorf("reply = %q", reply)
	}
}

func TestCommandFile_EmptyRequest(t *testing.T) {
	client, server := net.Pipe()
	client.Close()

	err := newCommandFile(t).Handle(context.Background(), session.New(server, nil))
	if !cerrors.Is(err, cerrors.ErrEmptyRequest) {
		t.Errorf("err = %v, want ErrEmptyRequest", err)
	}
}

func TestCommandFile_ReadTimeout(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	server.SetReadDeadline(time.Now().Add(20 * time.Millisecond)) //nolint:errcheck
	err := newCommandFile(t).Handle(context.Background(), session.New(server, nil))

	var ne *cerrors.NetworkError
	if !cerrors.As(err, &ne) || ne.Op != "read" {
		t.Fatalf("err = %v, want read NetworkError", err)
	}
	if !cerrors.IsTimeout(err) {
		t.Errorf("expected timeout, got %v", err)
	}
}

func TestCommandFile_WriteFailure(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	c := newCommandFile(t)
	done := make(chan error, 1)
	go func() {
		done <- c.Handle(context.Background(), session.New(server, nil))
	}()

	if _, err := client.Write([]byte("/nonexistent")); err != nil {
		t.Fatal(err)
	}
	client.Close()

	select {
	case err := <-done:
		var ne *cerrors.NetworkError
		if !cerrors.As(err, &ne) || ne.Op != "write" {
			t.Errorf("err = %v, want write NetworkError", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return")
	}
}

func TestCommandFile_CancelledContext(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- newCommandFile(t).Handle(ctx, session.New(server, nil))
	}()
	client.Write([]byte("/nonexistent")) //nolint:errcheck

	if err := <-done; err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRequestPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/tmp/cmd1", "/tmp/cmd1"},
		{"/tmp/cmd1\n", "/tmp/cmd1"},
		{"/tmp/cmd1\n\n", "/tmp/cmd1\n"},
		{"/tmp/cmd1\r\n", "/tmp/cmd1\r"},
		{"/tmp/cmd1 ", "/tmp/cmd1 "},
		{"/tmp/a\x00junk", "/tmp/a"},
		{"\n", ""},
		{strings.Repeat("a", 300), strings.Repeat("a", MaxRequestLen)},
	}
	for _, tt := range tests {
		if got := RequestPath([]byte(tt.in)); got != tt.want {
			t.Errorf("RequestPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
