// Package models contains the data structures used throughout the wake
// sender.
package models

// TargetConfig holds the three fields that describe the machine to wake.
// A TargetConfig produced by the config loader is jointly valid: either
// all three fields passed validation or the loader returned nothing.
type TargetConfig struct {
	MACAddress       string
	BroadcastAddress string
	Port             uint16
}

// IsZero reports whether the config is still in its empty state.
func (c TargetConfig) IsZero() bool {
	return c.MACAddress == "" && c.BroadcastAddress == "" && c.Port == 0
}
