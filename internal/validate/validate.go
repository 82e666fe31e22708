// Package validate holds the pure syntax checks for the three target
// fields. The functions perform no I/O and report only the first problem
// they find; callers decide how to log it.
package validate

import (
	"strconv"
	"strings"

	"github.com/ohsungsik/Wake-On-Lan/internal/outcome"
)

// MAC address strings are "XX-XX-XX-XX-XX-XX": 17 characters, dashes at
// fixed positions. 18 is kept as the upper bound to match the original
// buffer size.
const maxMACLength = 18

var macSeparatorIndices = [5]int{2, 5, 8, 11, 14}

// MACAddress checks that s is six 2-hex-digit groups joined by dashes.
// Only the dash separator is accepted; colons and spaces are rejected.
func MACAddress(s string) error {
	if s == "" || len(s) > maxMACLength {
		return outcome.Errorf(outcome.InvalidMACAddress, "MAC address length %d is not valid", len(s))
	}
	if len(s) != 17 {
		return outcome.Errorf(outcome.InvalidMACAddress, "MAC address %q does not have six 2-digit groups", s)
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isMACSeparatorIndex(i) {
			if ch != '-' {
				return outcome.Errorf(outcome.InvalidMACAddress, "MAC address separator must be '-', got %q", string(ch))
			}
			continue
		}
		if !isHexDigit(ch) {
			return outcome.Errorf(outcome.InvalidMACAddress, "MAC address contains invalid character %q", string(ch))
		}
	}
	return nil
}

func isMACSeparatorIndex(i int) bool {
	for _, sep := range macSeparatorIndices {
		if i == sep {
			return true
		}
	}
	return false
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'F') || (ch >= 'a' && ch <= 'f')
}

// BroadcastAddress checks that s is a dotted-quad IPv4 address: exactly
// four octets separated by exactly three dots, each octet 1-3 decimal
// digits in 0..255 with no leading zero. An empty octet (from a leading,
// trailing, or doubled dot) fails the octet length check.
func BroadcastAddress(s string) error {
	dots := strings.Count(s, ".")
	if dots != 3 {
		return outcome.Errorf(outcome.InvalidBroadcastAddress, "broadcast address needs 3 dots, got %d", dots)
	}
	for _, octet := range strings.SplitN(s, ".", 4) {
		if err := ipOctet(octet); err != nil {
			return err
		}
	}
	return nil
}

func ipOctet(octet string) error {
	if octet == "" || len(octet) > 3 {
		return outcome.Errorf(outcome.InvalidBroadcastAddress, "broadcast address octet length %d is not valid", len(octet))
	}
	for i := 0; i < len(octet); i++ {
		if octet[i] < '0' || octet[i] > '9' {
			return outcome.Errorf(outcome.InvalidBroadcastAddress, "broadcast address octet contains invalid character %q", string(octet[i]))
		}
	}
	if len(octet) > 1 && octet[0] == '0' {
		return outcome.Errorf(outcome.InvalidBroadcastAddress, "broadcast address octet %q has a leading zero", octet)
	}
	value, err := strconv.Atoi(octet)
	if err != nil {
		return outcome.Errorf(outcome.InvalidBroadcastAddress, "broadcast address octet %q is not a number", octet)
	}
	if value > 255 {
		return outcome.Errorf(outcome.InvalidBroadcastAddress, "broadcast address octet value %d is out of range (0-255)", value)
	}
	return nil
}

// Port parses s as a decimal port number and checks the 1-65535 range.
// Trailing garbage and numerals that overflow the parser both fail; the
// diagnostics differ but the outcome kind is the same.
func Port(s string) (uint16, error) {
	if s == "" {
		return 0, outcome.Errorf(outcome.InvalidPort, "port is empty")
	}
	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, outcome.Errorf(outcome.InvalidPort, "port %q overflows", s)
		}
		return 0, outcome.Errorf(outcome.InvalidPort, "port %q is not a number", s)
	}
	if value < 1 || value > 65535 {
		return 0, outcome.Errorf(outcome.InvalidPort, "port %d is out of range (1-65535)", value)
	}
	return uint16(value), nil
}
