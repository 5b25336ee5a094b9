// Package engine orchestrates the match → classify stages of the crash
// pipeline. It turns raw log records into classified entries; ordering,
// deduplication, and status are the report package's job.
package engine

import (
	"strings"

	"github.com/crimson-sun/crashlens/internal/engine/classifier"
	"github.com/crimson-sun/crashlens/internal/engine/matcher"
	"github.com/crimson-sun/crashlens/internal/model"
)

// summaryLimit caps the summary line length in runes.
const summaryLimit = 120

// Engine holds the per-search matcher and the static classifier.
type Engine struct {
	matcher    *matcher.Matcher
	classifier *classifier.Classifier
}

// New creates an Engine with the provided components.
func New(m *matcher.Matcher, c *classifier.Classifier) *Engine {
	return &Engine{matcher: m, classifier: c}
}

// ProcessBatch matches and classifies a slice of records, keeping only the
// records relevant to the target executable. Order is preserved.
func (e *Engine) ProcessBatch(records []model.LogRecord) []model.ClassifiedEntry {
	entries := make([]model.ClassifiedEntry, 0, len(records))
	for _, res := range e.matcher.MatchAll(records) {
		if !res.Matched {
			continue
		}
		entries = append(entries, e.entry(res))
	}
	return entries
}

// ProcessUnfiltered classifies every record without relevance filtering,
// tagging each as unmatched with confidence zero. Used by the terminal
// fallback so the caller still sees something when no record matched.
func (e *Engine) ProcessUnfiltered(records []model.LogRecord) []model.ClassifiedEntry {
	entries := make([]model.ClassifiedEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, e.entry(model.MatchResult{
			Record:     rec,
			Matched:    false,
			Reason:     model.ReasonNone,
			Confidence: 0,
		}))
	}
	return entries
}

// entry classifies one match result. Classification never drops an entry;
// an unmatched rule table leaves Category empty.
func (e *Engine) entry(res model.MatchResult) model.ClassifiedEntry {
	cls := e.classifier.Classify(res.Record.Message)
	return model.ClassifiedEntry{
		Match:       res,
		Category:    cls.Category,
		Explanation: cls.Explanation,
		Summary:     summarize(res.Record.Message),
	}
}

// summarize returns the first line of the message, truncated to the summary
// limit on a rune boundary.
func summarize(message string) string {
	line := message
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	runes := []rune(line)
	if len(runes) <= summaryLimit {
		return line
	}
	return string(runes[:summaryLimit]) + "..."
}
