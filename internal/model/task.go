package model

import "UniqSpectra/internal/config"

// Task defines a single, self-contained measurement over the packet stream
// (e.g. distinct destinations per source). This is the interface for the
// "execution layer".
type Task interface {
	ProcessPacket(packet *PacketInfo)

	// Snapshot returns the task's current results. The concrete payload type
	// is a contract between the task and the writers configured for it.
	Snapshot() any

	// Reset clears the task's state for a new measurement period.
	Reset()

	Name() string

	// AlerterMsg evaluates the given rules against the task's current state
	// and returns a formatted HTML fragment for any that triggered.
	AlerterMsg(rules []config.AlerterRule) string
}
