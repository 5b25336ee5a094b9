// Package report assembles classified entries into the final ordered report:
// newest crash first, stable on ties, with optional collapsing of repeated
// identical crashes (crash loops).
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/crimson-sun/crashlens/internal/model"
)

// DefaultDedupWindow is the grouping window for repeated crashes.
const DefaultDedupWindow = 5 * time.Minute

// Config controls report assembly.
type Config struct {
	Dedup       bool
	DedupWindow time.Duration // defaults to DefaultDedupWindow when <= 0
}

// Assembler orders and optionally deduplicates classified entries.
type Assembler struct {
	cfg Config
}

// New creates an Assembler with the given config.
func New(cfg Config) *Assembler {
	if cfg.DedupWindow <= 0 {
		cfg.DedupWindow = DefaultDedupWindow
	}
	return &Assembler{cfg: cfg}
}

// Assemble sorts entries by timestamp descending (stable: ties preserve read
// order), applies deduplication when enabled, and derives the overall status.
func (a *Assembler) Assemble(entries []model.ClassifiedEntry) ([]model.ClassifiedEntry, model.Status) {
	out := make([]model.ClassifiedEntry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Match.Record.Timestamp.After(out[j].Match.Record.Timestamp)
	})

	if a.cfg.Dedup {
		out = a.dedup(out)
	}

	if len(out) == 0 {
		return out, model.StatusNoMatches
	}
	return out, model.StatusOK
}

// dedupKey groups entries that describe the same recurring crash.
func dedupKey(e model.ClassifiedEntry) string {
	return fmt.Sprintf("%s|%s|%d", e.Category, e.Match.Record.Provider, e.Match.Record.EventID)
}

// group accumulates entries with the same dedup key.
type group struct {
	entry    model.ClassifiedEntry
	count    int
	newestTS time.Time
	oldestTS time.Time
}

// dedup collapses entries with an identical key whose timestamps fall within
// the window of the group's newest entry. Entries arrive newest-first, so a
// group keeps its most recent occurrence and counts the older repeats.
func (a *Assembler) dedup(entries []model.ClassifiedEntry) []model.ClassifiedEntry {
	if len(entries) == 0 {
		return entries
	}

	var order []*group
	current := make(map[string]*group)

	for _, e := range entries {
		key := dedupKey(e)
		ts := e.Match.Record.Timestamp

		if g, ok := current[key]; ok && g.newestTS.Sub(ts) <= a.cfg.DedupWindow {
			g.count++
			if ts.Before(g.oldestTS) {
				g.oldestTS = ts
			}
			continue
		}

		// New group: either a new key or the repeat is outside the window.
		// An out-of-window repeat starts a fresh group at its own position.
		g := &group{entry: e, count: 1, newestTS: ts, oldestTS: ts}
		current[key] = g
		order = append(order, g)
	}

	result := make([]model.ClassifiedEntry, 0, len(order))
	for _, g := range order {
		e := g.entry
		if g.count > 1 {
			e.Count = g.count
			span := g.newestTS.Sub(g.oldestTS)
			e.Summary = fmt.Sprintf("%s (x%d in %s)", e.Summary, g.count, formatDuration(span))
		}
		result = append(result, e)
	}
	return result
}

// formatDuration produces a human-readable short duration string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm%ds", mins, secs)
}
