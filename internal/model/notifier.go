package model

// Notifier defines a generic interface for broadcasting a finished report.
type Notifier interface {
	Send(subject string, body []byte) error
	Close()
}
