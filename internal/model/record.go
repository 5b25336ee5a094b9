package model

import "time"

// LogRecord is a single raw event-log record as produced by a source.
// Immutable once read; discarded after report assembly.
type LogRecord struct {
	Timestamp time.Time
	Channel   string // event channel (Application, System)
	Provider  string // reporting source name (e.g. "Application Error")
	EventID   uint16
	Message   string
}
