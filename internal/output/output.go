package output

import (
	"context"

	"github.com/crimson-sun/crashlens/internal/model"
)

// Output defines the interface for report destinations.
type Output interface {
	Write(ctx context.Context, rep model.Report) error
	Close() error
}

// Entry is the JSON projection of one classified entry, shared by the
// ndjson and file writers.
type Entry struct {
	Timestamp   string  `json:"timestamp"`
	Channel     string  `json:"channel"`
	Provider    string  `json:"provider"`
	EventID     uint16  `json:"event_id"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"`
	Category    string  `json:"category,omitempty"`
	Explanation string  `json:"explanation,omitempty"`
	Summary     string  `json:"summary"`
	Message     string  `json:"message,omitempty"`
	Count       int     `json:"count,omitempty"`
}

// Trailer closes an NDJSON stream with the run's overall outcome.
type Trailer struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
	Entries  int    `json:"entries"`
}

// FormatEntry converts a classified entry to its JSON projection.
func FormatEntry(e model.ClassifiedEntry) Entry {
	rec := e.Match.Record
	return Entry{
		Timestamp:   rec.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Channel:     rec.Channel,
		Provider:    rec.Provider,
		EventID:     rec.EventID,
		Reason:      string(e.Match.Reason),
		Confidence:  e.Match.Confidence,
		Category:    e.Category,
		Explanation: e.Explanation,
		Summary:     e.Summary,
		Message:     rec.Message,
		Count:       e.Count,
	}
}
