//go:build e2e

package e2e

import (
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/ohsungsik/Wake-On-Lan/internal/config"
	"github.com/ohsungsik/Wake-On-Lan/internal/services/wol"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestSendMagicPacket_Loopback_E2E(t *testing.T) {
	// Listen on an ephemeral loopback port and aim the sender at it.
	listener, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()

	port := listener.LocalAddr().(*net.UDPAddr).Port

	ini := "[Target]\n" +
		"MacAddress=A0-36-BC-BB-EB-CC\n" +
		"BroadcastIp=127.0.0.1\n" +
		"Port=" + strconv.Itoa(port) + "\n"

	cfg, err := config.NewParser().LoadReader(ini)
	require.NoError(t, err)

	sender := wol.New(testLogger())
	require.NoError(t, sender.Send(*cfg))

	require.NoError(t, listener.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 256)
	n, _, err := listener.ReadFromUDP(buf)
	require.NoError(t, err)

	require.Equal(t, wol.MagicPacketLength, n)
	packet := buf[:n]
	for i := 0; i < 6; i++ {
		assert.Equal(t, byte(0xFF), packet[i])
	}
	mac := []byte{0xA0, 0x36, 0xBC, 0xBB, 0xEB, 0xCC}
	for repeat := 0; repeat < 16; repeat++ {
		offset := 6 + repeat*6
		assert.Equal(t, mac, packet[offset:offset+6], "repetition %d", repeat)
	}
}

