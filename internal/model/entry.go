package model

// ClassifiedEntry is a matched record annotated with its crash category.
// Category and Explanation are empty when no classification rule fired;
// such entries are still reported as unclassified crashes.
type ClassifiedEntry struct {
	Match       MatchResult
	Category    string
	Explanation string
	Summary     string // first line of the message, truncated
	Count       int    // >1 when deduplicated
}
