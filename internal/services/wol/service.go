// Package wol builds and transmits Wake-on-LAN magic packets.
package wol

import (
	"fmt"
	"net"

	"github.com/ohsungsik/Wake-On-Lan/internal/models"
	"github.com/ohsungsik/Wake-On-Lan/internal/outcome"
	"github.com/rs/zerolog"
)

// Service defines the interface for sending a magic packet.
type Service interface {
	Send(cfg models.TargetConfig) error
}

// Impl implements the Service interface.
type Impl struct {
	client Client
	stack  *NetworkStack
	logger zerolog.Logger
}

// New creates a new sender using the real network transport.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		client: DefaultClient{},
		stack:  defaultNetworkStack,
		logger: logger,
	}
}

// NewWithClients creates a new sender with a custom transport (for testing).
func NewWithClients(logger zerolog.Logger, client Client, stack *NetworkStack) *Impl {
	return &Impl{
		client: client,
		stack:  stack,
		logger: logger,
	}
}

// Send transmits one magic packet to cfg's broadcast address and port.
// The config must come from a successful load: all three fields already
// validated. A zero field here is a bug in the caller, not a runtime
// condition, and panics.
//
// The send is fire-and-forget. WOL has no acknowledgment, so there is no
// delivery confirmation to wait for and no retry at this layer.
func (s *Impl) Send(cfg models.TargetConfig) error {
	if cfg.MACAddress == "" || cfg.BroadcastAddress == "" || cfg.Port == 0 {
		panic(fmt.Sprintf("wol: Send called with unvalidated config %+v", cfg))
	}

	hw := ParseHardwareAddress(cfg.MACAddress)
	packet := BuildMagicPacket(hw)

	release, err := s.stack.Acquire()
	if err != nil {
		return err
	}
	defer release()

	sock, err := s.client.Open()
	if err != nil {
		return err
	}
	defer func() { _ = sock.Close() }()

	if err := sock.EnableBroadcast(); err != nil {
		return err
	}

	dest, err := resolveBroadcastAddr(cfg.BroadcastAddress, cfg.Port)
	if err != nil {
		return err
	}

	s.logger.Debug().
		Str("mac", cfg.MACAddress).
		Str("destination", dest.String()).
		Msg("sending magic packet")

	n, err := sock.SendTo(dest, packet[:])
	if err != nil {
		return outcome.Wrap(outcome.PacketSendFailed, err)
	}
	if n != MagicPacketLength {
		return outcome.Errorf(outcome.PacketSendFailed, "short send: %d of %d bytes", n, MagicPacketLength)
	}

	s.logger.Info().
		Str("mac", cfg.MACAddress).
		Str("destination", dest.String()).
		Int("bytes", n).
		Msg("magic packet sent")

	return nil
}

// resolveBroadcastAddr converts the textual broadcast address and port
// into a UDP destination.
func resolveBroadcastAddr(broadcast string, port uint16) (*net.UDPAddr, error) {
	ip := net.ParseIP(broadcast)
	if ip == nil || ip.To4() == nil {
		return nil, outcome.Errorf(outcome.BroadcastSetupFailed, "cannot convert %q to an IPv4 address", broadcast)
	}
	return &net.UDPAddr{IP: ip.To4(), Port: int(port)}, nil
}
