package wol

import (
	"net"

	"github.com/ohsungsik/Wake-On-Lan/internal/outcome"
)

// Socket is one UDP socket configured for a single broadcast send.
type Socket interface {
	EnableBroadcast() error
	SendTo(addr *net.UDPAddr, payload []byte) (int, error)
	Close() error
}

// Client opens sockets. It exists so tests can substitute a fake
// transport for the real one.
type Client interface {
	Open() (Socket, error)
}

// DefaultClient opens real IPv4 UDP sockets.
type DefaultClient struct{}

// Open allocates a UDP socket bound to an ephemeral local port.
func (DefaultClient) Open() (Socket, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{})
	if err != nil {
		return nil, outcome.Wrap(outcome.SocketCreationFailed, err)
	}
	sock := &BroadcastSocket{}
	sock.setConn(conn)
	return sock, nil
}

// BroadcastSocket owns exactly one UDP socket handle. The handle is
// closed exactly once no matter which path leaves the send scope; Close
// on an already-closed socket is a no-op.
type BroadcastSocket struct {
	conn *net.UDPConn
}

// setConn replaces the held handle, closing the previous one first.
func (s *BroadcastSocket) setConn(conn *net.UDPConn) {
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = conn
}

// EnableBroadcast sets SO_BROADCAST on the underlying handle so datagrams
// may be sent to a broadcast address.
func (s *BroadcastSocket) EnableBroadcast() error {
	raw, err := s.conn.SyscallConn()
	if err != nil {
		return outcome.Wrap(outcome.BroadcastSetupFailed, err)
	}
	if err := setBroadcastOption(raw); err != nil {
		return outcome.Wrap(outcome.BroadcastSetupFailed, err)
	}
	return nil
}

// SendTo issues one blocking datagram send to addr and reports the number
// of bytes the transport accepted.
func (s *BroadcastSocket) SendTo(addr *net.UDPAddr, payload []byte) (int, error) {
	return s.conn.WriteToUDP(payload, addr)
}

// Close releases the handle. Safe to call more than once.
func (s *BroadcastSocket) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
