package model

import "time"

// Status is the overall outcome of a search.
type Status string

const (
	StatusOK        Status = "ok"
	StatusNoMatches Status = "no_matches"
)

// Report is the assembled output of a single search run.
type Report struct {
	ID          string // unique per run
	GeneratedAt time.Time
	Executable  string // base name of the target executable
	Path        string // full path as supplied by the caller
	DayWindow   int
	DeepScan    bool
	Status      Status
	Entries     []ClassifiedEntry // sorted by timestamp descending
}
