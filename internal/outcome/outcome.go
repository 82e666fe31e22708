// Package outcome defines the closed set of results a wake attempt can
// produce. The numeric value of an Outcome is the process exit code, so the
// ordering is part of the external contract and must not change.
package outcome

import (
	"errors"
	"fmt"
)

// Outcome identifies one failure kind (or success) of the load/validate/send
// pipeline. Every fallible operation reports exactly one Outcome.
type Outcome uint8

const (
	// Success is the zero value and the zero exit code.
	Success Outcome = iota

	// Locating the configuration file.
	FailedToGetExecutablePath
	InvalidExecutablePath

	// Reading the configuration file.
	ConfigFileNotFound
	ConfigFileNotReadable
	MissingMACAddress
	InvalidMACAddress
	MissingBroadcastAddress
	InvalidBroadcastAddress
	MissingPort
	InvalidPort

	// Sending the magic packet.
	NetworkStackInitFailed
	SocketCreationFailed
	BroadcastSetupFailed
	PacketSendFailed

	// Anything not otherwise classified.
	UnexpectedFailure
)

var descriptions = map[Outcome]string{
	Success:                   "success",
	FailedToGetExecutablePath: "cannot determine the executable path",
	InvalidExecutablePath:     "invalid executable path",
	ConfigFileNotFound:        "config file not found",
	ConfigFileNotReadable:     "config file cannot be read",
	MissingMACAddress:         "config file has no MAC address",
	InvalidMACAddress:         "invalid MAC address",
	MissingBroadcastAddress:   "config file has no broadcast address",
	InvalidBroadcastAddress:   "invalid broadcast address",
	MissingPort:               "config file has no port",
	InvalidPort:               "invalid port number",
	NetworkStackInitFailed:    "network stack initialization failed",
	SocketCreationFailed:      "socket creation failed",
	BroadcastSetupFailed:      "broadcast setup failed",
	PacketSendFailed:          "packet send failed",
	UnexpectedFailure:         "unexpected failure",
}

// String returns the human-readable description of the outcome.
func (o Outcome) String() string {
	if s, ok := descriptions[o]; ok {
		return s
	}
	return fmt.Sprintf("unknown outcome (%d)", uint8(o))
}

// ExitCode returns the process exit code for the outcome.
func (o Outcome) ExitCode() int {
	return int(o)
}

// Error pairs an Outcome with its underlying cause. It is the error type
// returned by every fallible operation in this module.
type Error struct {
	Outcome Outcome
	Cause   error
}

// Errorf builds an *Error with a formatted cause.
func Errorf(o Outcome, format string, args ...any) *Error {
	return &Error{Outcome: o, Cause: fmt.Errorf(format, args...)}
}

// Wrap attaches an outcome to an existing error.
func Wrap(o Outcome, cause error) *Error {
	return &Error{Outcome: o, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Outcome.String()
	}
	return fmt.Sprintf("%s: %s", e.Outcome, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, &Error{Outcome: o}) match on the outcome alone.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Outcome == other.Outcome
}

// FromError reduces an error to its Outcome. A nil error is Success, an
// error without an attached outcome is UnexpectedFailure.
func FromError(err error) Outcome {
	if err == nil {
		return Success
	}
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Outcome
	}
	return UnexpectedFailure
}
