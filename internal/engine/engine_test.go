package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/crimson-sun/crashlens/internal/engine/classifier"
	"github.com/crimson-sun/crashlens/internal/engine/matcher"
	"github.com/crimson-sun/crashlens/internal/model"
)

func newEngine(deepScan bool) *Engine {
	return New(matcher.New("Game.exe", deepScan), classifier.New())
}

func record(message string) model.LogRecord {
	return model.LogRecord{
		Timestamp: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		Channel:   "Application",
		Provider:  "Application Error",
		EventID:   1000,
		Message:   message,
	}
}

func TestProcessBatchKeepsOnlyMatches(t *testing.T) {
	e := newEngine(false)
	records := []model.LogRecord{
		record("Faulting application name: Game.exe, exception code 0xc0000005"),
		record("Faulting application name: other.exe, exception code 0xc0000005"),
	}

	entries := e.ProcessBatch(records)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Category != "ACCESS_VIOLATION" {
		t.Fatalf("expected ACCESS_VIOLATION, got %s", entries[0].Category)
	}
	if entries[0].Match.Reason != model.ReasonExact {
		t.Fatalf("expected exact reason, got %s", entries[0].Match.Reason)
	}
}

func TestUnclassifiedEntryIsKept(t *testing.T) {
	e := newEngine(false)

	entries := e.ProcessBatch([]model.LogRecord{
		record("Game.exe stopped working for reasons unknown"),
	})
	if len(entries) != 1 {
		t.Fatalf("classification miss must not drop the entry, got %d entries", len(entries))
	}
	if entries[0].Category != "" {
		t.Fatalf("expected unclassified, got %s", entries[0].Category)
	}
}

func TestProcessUnfiltered(t *testing.T) {
	e := newEngine(true)
	records := []model.LogRecord{
		record("completely unrelated service crash 0xc00000fd"),
		record("another unrelated crash"),
	}

	entries := e.ProcessUnfiltered(records)
	if len(entries) != 2 {
		t.Fatalf("expected all records kept, got %d", len(entries))
	}
	for i, en := range entries {
		if en.Match.Matched || en.Match.Reason != model.ReasonNone || en.Match.Confidence != 0 {
			t.Fatalf("entry %d should be unmatched with zero confidence: %+v", i, en.Match)
		}
	}
	if entries[0].Category != "STACK_OVERFLOW" {
		t.Fatalf("unfiltered entries are still classified, got %q", entries[0].Category)
	}
}

func TestSummarize(t *testing.T) {
	if got := summarize("first line\nsecond line"); got != "first line" {
		t.Fatalf("expected first line, got %q", got)
	}

	long := strings.Repeat("x", 200)
	got := summarize(long)
	if len([]rune(got)) != 123 { // 120 runes plus ellipsis
		t.Fatalf("expected truncation to 123 runes, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}
