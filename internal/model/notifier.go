package model

// Notifier delivers alert messages to an external channel (e.g. email).
type Notifier interface {
	Send(subject, body string) error
}
