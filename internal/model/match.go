package model

// MatchReason identifies which strategy matched a record to the target
// executable.
type MatchReason string

const (
	ReasonExact  MatchReason = "exact"
	ReasonFuzzy  MatchReason = "fuzzy"
	ReasonFolder MatchReason = "folder"
	ReasonNone   MatchReason = "none"
)

// MatchResult is the outcome of relevance-matching a single record.
type MatchResult struct {
	Record     LogRecord
	Matched    bool
	Reason     MatchReason
	Confidence float64 // in [0,1]; 1.0 exact, ratio for fuzzy, 0.4 folder
}
