package wol

import (
	"errors"
	"io"
	"net"
	"testing"

	"github.com/ohsungsik/Wake-On-Lan/internal/models"
	"github.com/ohsungsik/Wake-On-Lan/internal/outcome"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSocket struct {
	enableErr error
	sendErr   error
	shortSend bool

	broadcastOn bool
	sentAddr    *net.UDPAddr
	sentPayload []byte
	closeCalls  int
}

func (m *mockSocket) EnableBroadcast() error {
	if m.enableErr != nil {
		return m.enableErr
	}
	m.broadcastOn = true
	return nil
}

func (m *mockSocket) SendTo(addr *net.UDPAddr, payload []byte) (int, error) {
	if m.sendErr != nil {
		return 0, m.sendErr
	}
	m.sentAddr = addr
	m.sentPayload = append([]byte(nil), payload...)
	if m.shortSend {
		return len(payload) - 1, nil
	}
	return len(payload), nil
}

func (m *mockSocket) Close() error {
	m.closeCalls++
	return nil
}

type mockClient struct {
	openErr error
	socket  *mockSocket
}

func (m *mockClient) Open() (Socket, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	return m.socket, nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func validTarget() models.TargetConfig {
	return models.TargetConfig{
		MACAddress:       "A0-36-BC-BB-EB-CC",
		BroadcastAddress: "192.168.0.255",
		Port:             9,
	}
}

func TestSend_Success(t *testing.T) {
	sock := &mockSocket{}
	svc := NewWithClients(testLogger(), &mockClient{socket: sock}, &NetworkStack{})

	err := svc.Send(validTarget())

	require.NoError(t, err)
	assert.True(t, sock.broadcastOn)
	assert.Equal(t, 1, sock.closeCalls)

	require.NotNil(t, sock.sentAddr)
	assert.Equal(t, "192.168.0.255:9", sock.sentAddr.String())

	require.Len(t, sock.sentPayload, MagicPacketLength)
	want := []byte{0xA0, 0x36, 0xBC, 0xBB, 0xEB, 0xCC}
	assert.Equal(t, want, sock.sentPayload[6:12])
	assert.Equal(t, want, sock.sentPayload[96:102])
}

func TestSend_NetworkStackInitFailure(t *testing.T) {
	stack := &NetworkStack{initialize: func() error { return errors.New("init refused") }}
	client := &mockClient{socket: &mockSocket{}}
	svc := NewWithClients(testLogger(), client, stack)

	err := svc.Send(validTarget())

	require.Error(t, err)
	assert.Equal(t, outcome.NetworkStackInitFailed, outcome.FromError(err))
	assert.Nil(t, client.socket.sentPayload, "no socket work after init failure")
}

func TestSend_SocketCreationFailure(t *testing.T) {
	client := &mockClient{openErr: outcome.Errorf(outcome.SocketCreationFailed, "no descriptors")}
	svc := NewWithClients(testLogger(), client, &NetworkStack{})

	err := svc.Send(validTarget())

	require.Error(t, err)
	assert.Equal(t, outcome.SocketCreationFailed, outcome.FromError(err))
}

func TestSend_BroadcastSetupFailure(t *testing.T) {
	sock := &mockSocket{enableErr: outcome.Errorf(outcome.BroadcastSetupFailed, "setsockopt denied")}
	svc := NewWithClients(testLogger(), &mockClient{socket: sock}, &NetworkStack{})

	err := svc.Send(validTarget())

	require.Error(t, err)
	assert.Equal(t, outcome.BroadcastSetupFailed, outcome.FromError(err))
	assert.Equal(t, 1, sock.closeCalls, "socket must be closed on the error path")
	assert.Nil(t, sock.sentPayload)
}

func TestSend_AddressConversionFailure(t *testing.T) {
	sock := &mockSocket{}
	svc := NewWithClients(testLogger(), &mockClient{socket: sock}, &NetworkStack{})

	cfg := validTarget()
	cfg.BroadcastAddress = "not-an-ip"
	err := svc.Send(cfg)

	require.Error(t, err)
	assert.Equal(t, outcome.BroadcastSetupFailed, outcome.FromError(err))
	assert.Equal(t, 1, sock.closeCalls)
	assert.Nil(t, sock.sentPayload)
}

func TestSend_PacketSendFailure(t *testing.T) {
	sock := &mockSocket{sendErr: errors.New("network unreachable")}
	svc := NewWithClients(testLogger(), &mockClient{socket: sock}, &NetworkStack{})

	err := svc.Send(validTarget())

	require.Error(t, err)
	assert.Equal(t, outcome.PacketSendFailed, outcome.FromError(err))
	assert.Equal(t, 1, sock.closeCalls)
}

func TestSend_ShortSendIsFailure(t *testing.T) {
	sock := &mockSocket{shortSend: true}
	svc := NewWithClients(testLogger(), &mockClient{socket: sock}, &NetworkStack{})

	err := svc.Send(validTarget())

	require.Error(t, err)
	assert.Equal(t, outcome.PacketSendFailed, outcome.FromError(err))
}

func TestSend_ReleasesNetworkStackOnEveryPath(t *testing.T) {
	teardowns := 0
	stack := &NetworkStack{teardown: func() { teardowns++ }}

	svc := NewWithClients(testLogger(), &mockClient{socket: &mockSocket{}}, stack)
	require.NoError(t, svc.Send(validTarget()))
	assert.Equal(t, 1, teardowns)

	svc = NewWithClients(testLogger(), &mockClient{openErr: errors.New("boom")}, stack)
	require.Error(t, svc.Send(validTarget()))
	assert.Equal(t, 2, teardowns)
}

func TestSend_PanicsOnUnvalidatedConfig(t *testing.T) {
	svc := NewWithClients(testLogger(), &mockClient{socket: &mockSocket{}}, &NetworkStack{})

	assert.Panics(t, func() { _ = svc.Send(models.TargetConfig{}) })
	assert.Panics(t, func() {
		cfg := validTarget()
		cfg.Port = 0
		_ = svc.Send(cfg)
	})
}
