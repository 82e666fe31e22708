//go:build windows

package wol

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func setBroadcastOption(raw syscall.RawConn) error {
	var optErr error
	if err := raw.Control(func(fd uintptr) {
		optErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_BROADCAST, 1)
	}); err != nil {
		return err
	}
	return optErr
}
