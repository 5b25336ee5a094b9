package crashlens

import (
	"time"

	"github.com/crimson-sun/crashlens/internal/model"
)

// Status is the overall outcome of a search.
type Status string

const (
	StatusOK        Status = "ok"
	StatusNoMatches Status = "no_matches"
)

// MatchReason identifies which strategy matched an entry.
type MatchReason string

const (
	ReasonExact  MatchReason = "exact"
	ReasonFuzzy  MatchReason = "fuzzy"
	ReasonFolder MatchReason = "folder"
	ReasonNone   MatchReason = "none"
)

// Report is the result of one search, newest entry first.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Executable  string    `json:"executable"`
	Path        string    `json:"path"`
	DayWindow   int       `json:"day_window"`
	DeepScan    bool      `json:"deep_scan"`
	Status      Status    `json:"status"`
	Entries     []Entry   `json:"entries"`
}

// Entry is one crash event, annotated with how it matched and what it means.
// Category is empty for unclassified crashes; such entries are still listed.
type Entry struct {
	Timestamp   time.Time   `json:"timestamp"`
	Channel     string      `json:"channel"`
	Provider    string      `json:"provider"`
	EventID     uint16      `json:"event_id"`
	Message     string      `json:"message"`
	Matched     bool        `json:"matched"`
	Reason      MatchReason `json:"reason"`
	Confidence  float64     `json:"confidence"`
	Category    string      `json:"category,omitempty"`
	Explanation string      `json:"explanation,omitempty"`
	Summary     string      `json:"summary"`
	Count       int         `json:"count,omitempty"`
}

// reportFromInternal converts the internal report to the public type.
func reportFromInternal(rep model.Report) Report {
	entries := make([]Entry, len(rep.Entries))
	for i, e := range rep.Entries {
		rec := e.Match.Record
		entries[i] = Entry{
			Timestamp:   rec.Timestamp,
			Channel:     rec.Channel,
			Provider:    rec.Provider,
			EventID:     rec.EventID,
			Message:     rec.Message,
			Matched:     e.Match.Matched,
			Reason:      MatchReason(e.Match.Reason),
			Confidence:  e.Match.Confidence,
			Category:    e.Category,
			Explanation: e.Explanation,
			Summary:     e.Summary,
			Count:       e.Count,
		}
	}
	return Report{
		ID:          rep.ID,
		GeneratedAt: rep.GeneratedAt,
		Executable:  rep.Executable,
		Path:        rep.Path,
		DayWindow:   rep.DayWindow,
		DeepScan:    rep.DeepScan,
		Status:      Status(rep.Status),
		Entries:     entries,
	}
}
