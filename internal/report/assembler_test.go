package report

import (
	"testing"
	"time"

	"github.com/crimson-sun/crashlens/internal/model"
)

func entryAt(ts time.Time, category, summary string) model.ClassifiedEntry {
	return model.ClassifiedEntry{
		Match: model.MatchResult{
			Record: model.LogRecord{
				Timestamp: ts,
				Channel:   "Application",
				Provider:  "Application Error",
				EventID:   1000,
				Message:   summary,
			},
			Matched:    true,
			Reason:     model.ReasonExact,
			Confidence: 1.0,
		},
		Category: category,
		Summary:  summary,
	}
}

var base = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestAssembleNewestFirst(t *testing.T) {
	a := New(Config{})
	t1, t2, t3 := base, base.Add(time.Hour), base.Add(2*time.Hour)

	entries, status := a.Assemble([]model.ClassifiedEntry{
		entryAt(t1, "A", "one"),
		entryAt(t3, "B", "three"),
		entryAt(t2, "C", "two"),
	})
	if status != model.StatusOK {
		t.Fatalf("expected ok, got %s", status)
	}
	got := []time.Time{
		entries[0].Match.Record.Timestamp,
		entries[1].Match.Record.Timestamp,
		entries[2].Match.Record.Timestamp,
	}
	if !got[0].Equal(t3) || !got[1].Equal(t2) || !got[2].Equal(t1) {
		t.Fatalf("expected [t3 t2 t1], got %v", got)
	}
}

func TestAssembleStableOnTies(t *testing.T) {
	a := New(Config{})

	entries, _ := a.Assemble([]model.ClassifiedEntry{
		entryAt(base, "A", "first read"),
		entryAt(base, "B", "second read"),
		entryAt(base, "C", "third read"),
	})
	if entries[0].Summary != "first read" || entries[1].Summary != "second read" || entries[2].Summary != "third read" {
		t.Fatalf("tie-break must preserve read order, got %q %q %q",
			entries[0].Summary, entries[1].Summary, entries[2].Summary)
	}
}

func TestAssembleEmptyIsNoMatches(t *testing.T) {
	a := New(Config{})

	entries, status := a.Assemble(nil)
	if status != model.StatusNoMatches {
		t.Fatalf("expected no_matches, got %s", status)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestAssembleDoesNotMutateInput(t *testing.T) {
	a := New(Config{})
	in := []model.ClassifiedEntry{
		entryAt(base, "A", "older"),
		entryAt(base.Add(time.Hour), "B", "newer"),
	}

	a.Assemble(in)
	if in[0].Summary != "older" {
		t.Fatal("input slice was reordered")
	}
}

func TestDedupCollapsesRepeats(t *testing.T) {
	a := New(Config{Dedup: true, DedupWindow: 5 * time.Minute})

	entries, _ := a.Assemble([]model.ClassifiedEntry{
		entryAt(base, "ACCESS_VIOLATION", "crash"),
		entryAt(base.Add(time.Minute), "ACCESS_VIOLATION", "crash"),
		entryAt(base.Add(2*time.Minute), "ACCESS_VIOLATION", "crash"),
	})
	if len(entries) != 1 {
		t.Fatalf("expected 1 collapsed entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Count != 3 {
		t.Fatalf("expected count 3, got %d", e.Count)
	}
	// The kept entry is the most recent occurrence.
	if !e.Match.Record.Timestamp.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("expected newest timestamp kept, got %v", e.Match.Record.Timestamp)
	}
	if e.Summary != "crash (x3 in 2m)" {
		t.Fatalf("unexpected summary annotation: %q", e.Summary)
	}
}

func TestDedupRespectsWindow(t *testing.T) {
	a := New(Config{Dedup: true, DedupWindow: 5 * time.Minute})

	entries, _ := a.Assemble([]model.ClassifiedEntry{
		entryAt(base, "ACCESS_VIOLATION", "crash"),
		entryAt(base.Add(time.Hour), "ACCESS_VIOLATION", "crash"),
	})
	if len(entries) != 2 {
		t.Fatalf("repeats outside the window must stay separate, got %d", len(entries))
	}
	if entries[0].Count != 0 || entries[1].Count != 0 {
		t.Fatalf("unmerged entries must not carry a count: %d %d", entries[0].Count, entries[1].Count)
	}
}

func TestDedupKeepsDistinctCategories(t *testing.T) {
	a := New(Config{Dedup: true})

	entries, _ := a.Assemble([]model.ClassifiedEntry{
		entryAt(base, "ACCESS_VIOLATION", "crash"),
		entryAt(base.Add(time.Minute), "HEAP_CORRUPTION", "crash"),
	})
	if len(entries) != 2 {
		t.Fatalf("distinct categories must not merge, got %d", len(entries))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "500ms"},
		{12 * time.Second, "12s"},
		{2 * time.Minute, "2m"},
		{2*time.Minute + 30*time.Second, "2m30s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
