package model

import "time"

// Writer defines a generic interface for persisting task snapshots.
type Writer interface {
	// Write persists one task's snapshot payload. The implementation is
	// expected to know how to handle the payload type it receives.
	Write(payload any, timestamp, taskName string) error

	// GetInterval returns the configured snapshot interval for this writer.
	GetInterval() time.Duration
}
