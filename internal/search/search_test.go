package search

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crimson-sun/crashlens/internal/eventlog"
	"github.com/crimson-sun/crashlens/internal/model"
)

// fakeSource serves canned records per channel and can fail on demand.
type fakeSource struct {
	byChannel map[string][]model.LogRecord
	err       error
	block     bool // wait for ctx cancellation instead of answering
	queries   []eventlog.Params
}

func (f *fakeSource) Query(ctx context.Context, _ eventlog.Config, params eventlog.Params) ([]model.LogRecord, error) {
	f.queries = append(f.queries, params)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	var out []model.LogRecord
	for _, ch := range params.Channels {
		out = append(out, f.byChannel[ch]...)
	}
	return out, nil
}

func writeExe(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("MZ"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func record(ts time.Time, channel, message string) model.LogRecord {
	return model.LogRecord{
		Timestamp: ts,
		Channel:   channel,
		Provider:  "Application Error",
		EventID:   1000,
		Message:   message,
	}
}

func TestRunHappyPath(t *testing.T) {
	exe := writeExe(t, "Game.exe")
	now := time.Now()
	src := &fakeSource{byChannel: map[string][]model.LogRecord{
		"Application": {
			record(now.Add(-time.Hour), "Application", "Faulting application name: Game.exe, exception code 0xc0000005"),
			record(now.Add(-2*time.Hour), "Application", "Faulting application name: other.exe"),
		},
	}}

	rep, err := New(src, eventlog.Config{}).Run(context.Background(), Config{
		ExecutablePath: exe,
		DayWindow:      7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Status != model.StatusOK {
		t.Fatalf("expected ok, got %s", rep.Status)
	}
	if len(rep.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(rep.Entries))
	}
	if rep.Entries[0].Category != "ACCESS_VIOLATION" {
		t.Fatalf("expected ACCESS_VIOLATION, got %s", rep.Entries[0].Category)
	}
	if rep.ID == "" || rep.GeneratedAt.IsZero() {
		t.Fatal("report must carry an id and generation time")
	}
	if rep.Executable != "Game.exe" {
		t.Fatalf("expected executable Game.exe, got %s", rep.Executable)
	}
}

func TestRunQueryParams(t *testing.T) {
	exe := writeExe(t, "Game.exe")
	src := &fakeSource{}

	_, err := New(src, eventlog.Config{}).Run(context.Background(), Config{
		ExecutablePath: exe,
		DayWindow:      7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(src.queries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(src.queries))
	}
	q := src.queries[0]
	if q.Window != 7*24*time.Hour {
		t.Fatalf("expected 7-day window, got %v", q.Window)
	}
	if len(q.Channels) != 1 || q.Channels[0] != "Application" {
		t.Fatalf("expected Application channel, got %v", q.Channels)
	}
	if len(q.EventIDs) != 3 {
		t.Fatalf("expected crash event ids, got %v", q.EventIDs)
	}
}

func TestRunStrictNoMatchesNoFallback(t *testing.T) {
	exe := writeExe(t, "Game.exe")
	src := &fakeSource{byChannel: map[string][]model.LogRecord{
		"Application": {record(time.Now(), "Application", "unrelated crash")},
	}}

	rep, err := New(src, eventlog.Config{}).Run(context.Background(), Config{
		ExecutablePath: exe,
		DayWindow:      2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Status != model.StatusNoMatches {
		t.Fatalf("expected no_matches, got %s", rep.Status)
	}
	if len(src.queries) != 1 {
		t.Fatalf("strict mode must not run the fallback query, got %d queries", len(src.queries))
	}
}

func TestRunTerminalFallback(t *testing.T) {
	exe := writeExe(t, "Game.exe")
	now := time.Now()
	src := &fakeSource{byChannel: map[string][]model.LogRecord{
		"Application": {record(now.Add(-time.Hour), "Application", "unrelated service fault")},
		"System":      {record(now.Add(-2*time.Hour), "System", "driver nvlddmkm stopped responding")},
	}}

	rep, err := New(src, eventlog.Config{}).Run(context.Background(), Config{
		ExecutablePath: exe,
		DayWindow:      2,
		DeepScan:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Status != model.StatusOK {
		t.Fatalf("fallback batch is a valid result, expected ok, got %s", rep.Status)
	}
	if len(rep.Entries) != 2 {
		t.Fatalf("expected the full two-channel batch, got %d entries", len(rep.Entries))
	}
	for i, e := range rep.Entries {
		if e.Match.Matched || e.Match.Reason != model.ReasonNone || e.Match.Confidence != 0 {
			t.Fatalf("fallback entry %d must be unmatched: %+v", i, e.Match)
		}
	}
	if len(src.queries) != 2 {
		t.Fatalf("expected fallback query, got %d queries", len(src.queries))
	}
	fb := src.queries[1]
	if len(fb.Channels) != 2 {
		t.Fatalf("fallback must query both channels, got %v", fb.Channels)
	}
}

func TestRunFallbackEmptyBatch(t *testing.T) {
	exe := writeExe(t, "Game.exe")
	src := &fakeSource{}

	rep, err := New(src, eventlog.Config{}).Run(context.Background(), Config{
		ExecutablePath: exe,
		DayWindow:      2,
		DeepScan:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Status != model.StatusNoMatches {
		t.Fatalf("empty fallback batch means no_matches, got %s", rep.Status)
	}
}

func TestRunValidation(t *testing.T) {
	exe := writeExe(t, "Game.exe")
	s := New(&fakeSource{}, eventlog.Config{})

	if _, err := s.Run(context.Background(), Config{ExecutablePath: "", DayWindow: 2}); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := s.Run(context.Background(), Config{ExecutablePath: filepath.Join(t.TempDir(), "missing.exe"), DayWindow: 2}); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := s.Run(context.Background(), Config{ExecutablePath: exe, DayWindow: 5}); err == nil {
		t.Fatal("expected error for invalid day window")
	}
}

func TestRunPermissionErrorPropagates(t *testing.T) {
	exe := writeExe(t, "Game.exe")
	src := &fakeSource{err: eventlog.ErrAccessDenied}

	_, err := New(src, eventlog.Config{}).Run(context.Background(), Config{
		ExecutablePath: exe,
		DayWindow:      2,
	})
	if !errors.Is(err, eventlog.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if len(src.queries) != 1 {
		t.Fatalf("permission failures must not be retried, got %d queries", len(src.queries))
	}
}

func TestRunTimeout(t *testing.T) {
	exe := writeExe(t, "Game.exe")
	src := &fakeSource{block: true}

	_, err := New(src, eventlog.Config{}).Run(context.Background(), Config{
		ExecutablePath: exe,
		DayWindow:      2,
		Timeout:        20 * time.Millisecond,
	})
	if !errors.Is(err, eventlog.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	exe := writeExe(t, "Game.exe")
	src := &fakeSource{block: true}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := New(src, eventlog.Config{}).Run(ctx, Config{
		ExecutablePath: exe,
		DayWindow:      2,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
