package util

import (
	"net"
	"testing"
)

type fakeAddrConn struct {
	net.Conn
	addr net.Addr
}

func (c fakeAddrConn) RemoteAddr() net.Addr { return c.addr }

func TestPeerAddress(t *testing.T) {
	tests := []struct {
		name string
		conn net.Conn
		want string
	}{
		{"nil conn", nil, UnknownPeer},
		{"nil addr", fakeAddrConn{}, UnknownPeer},
		{"ipv4", fakeAddrConn{addr: &net.TCPAddr{IP: net.ParseIP("192.168.0.1"), Port: 22}}, "192.168.0.1:22"},
		{"ipv6", fakeAddrConn{addr: &net.TCPAddr{IP: net.ParseIP("::1"), Port: 443}}, "[::1]:443"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeerAddress(tt.conn); got != tt.want {
				t.Errorf("PeerAddress = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPeerAddress_Loopback(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	client, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	srv, err := ln.Accept()
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	if got, want := PeerAddress(srv), client.LocalAddr().String(); got != want {
		t.Errorf("PeerAddress = %q, want %q", got, want)
	}
}

func TestFormatAddr(t *testing.T) {
	if got := FormatAddr("1.2.3.4", 22); got != "1.2.3.4:22" {
		t.Errorf("got %q, want %q", got, "1.2.3.4:22")
	}
}

func TestFindFreePort(t *testing.T) {
	port, err := FindFreePort()
	if err != nil {
		t.Fatal(err)
	}
	if port < 1 || port > 65535 {
		t.Errorf("port %d out of range", port)
	}
}
