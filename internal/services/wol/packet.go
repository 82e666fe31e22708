package wol

import "fmt"

const (
	// HardwareAddressLength is the byte length of an EUI-48 hardware address.
	HardwareAddressLength = 6

	// MagicPacketLength is the fixed size of a Wake-on-LAN magic packet:
	// 6 bytes of 0xFF followed by 16 repetitions of the hardware address.
	MagicPacketLength = 6 + 16*HardwareAddressLength
)

// HardwareAddress is the 6-byte hardware (MAC) address of the target
// interface. Values are produced only by ParseHardwareAddress.
type HardwareAddress [HardwareAddressLength]byte

// MagicPacket is the 102-byte Wake-on-LAN payload.
type MagicPacket [MagicPacketLength]byte

// ParseHardwareAddress decodes a MAC address string of the form
// "XX-XX-XX-XX-XX-XX" into its 6 bytes. The string must already have
// passed validate.MACAddress; passing an unvalidated string is a caller
// bug and panics.
func ParseHardwareAddress(s string) HardwareAddress {
	if len(s) != 3*HardwareAddressLength-1 {
		panic(fmt.Sprintf("wol: hardware address %q was not validated", s))
	}
	var hw HardwareAddress
	for i := 0; i < HardwareAddressLength; i++ {
		hi := hexNibble(s, s[i*3])
		lo := hexNibble(s, s[i*3+1])
		hw[i] = hi<<4 | lo
	}
	return hw
}

func hexNibble(s string, ch byte) byte {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	}
	panic(fmt.Sprintf("wol: hardware address %q was not validated", s))
}

// BuildMagicPacket assembles the magic packet for the given hardware
// address: a 6-byte 0xFF synchronization header, then the address
// repeated 16 times back to back.
func BuildMagicPacket(hw HardwareAddress) MagicPacket {
	var packet MagicPacket
	for i := 0; i < 6; i++ {
		packet[i] = 0xFF
	}
	for repeat := 0; repeat < 16; repeat++ {
		copy(packet[6+repeat*HardwareAddressLength:], hw[:])
	}
	return packet
}
