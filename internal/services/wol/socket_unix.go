//go:build unix

package wol

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func setBroadcastOption(raw syscall.RawConn) error {
	var optErr error
	if err := raw.Control(func(fd uintptr) {
		optErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
	}); err != nil {
		return err
	}
	return optErr
}
