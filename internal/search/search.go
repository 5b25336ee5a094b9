// Package search runs the full crash-finding pipeline for one configuration:
// query the event log, filter for the target executable, classify matches,
// and assemble the ordered report.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/crimson-sun/crashlens/internal/engine"
	"github.com/crimson-sun/crashlens/internal/engine/classifier"
	"github.com/crimson-sun/crashlens/internal/engine/matcher"
	"github.com/crimson-sun/crashlens/internal/eventlog"
	"github.com/crimson-sun/crashlens/internal/model"
	"github.com/crimson-sun/crashlens/internal/report"
)

// ValidDayWindows are the accepted search periods, in days.
var ValidDayWindows = []int{2, 3, 7, 14}

// Config describes one search. Immutable per run; each Run invocation is
// independent and leaves no state behind.
type Config struct {
	ExecutablePath string
	DayWindow      int           // one of ValidDayWindows
	DeepScan       bool          // enables fuzzy and folder matching
	Timeout        time.Duration // 0 = no timeout
	Dedup          bool          // collapse repeated identical crashes
	DedupWindow    time.Duration
}

// Validate checks the config against the input boundary rules.
func (c Config) Validate() error {
	if c.ExecutablePath == "" {
		return errors.New("search: executable path is required")
	}
	info, err := os.Stat(c.ExecutablePath)
	if err != nil {
		return fmt.Errorf("search: executable path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("search: executable path %s is a directory", c.ExecutablePath)
	}
	for _, d := range ValidDayWindows {
		if c.DayWindow == d {
			return nil
		}
	}
	return fmt.Errorf("search: day window must be one of %v, got %d", ValidDayWindows, c.DayWindow)
}

// Searcher wires an event-log source to the matching and classification
// engine. One Searcher may run many searches; no state is shared between
// runs.
type Searcher struct {
	source eventlog.Source
	srcCfg eventlog.Config
}

// New creates a Searcher over the given source.
func New(source eventlog.Source, srcCfg eventlog.Config) *Searcher {
	return &Searcher{source: source, srcCfg: srcCfg}
}

// Run executes the pipeline: query → match → classify → assemble. The
// context is checked between stages; on cancellation partial results are
// discarded, not returned. Query timeouts surface as eventlog.ErrTimeout.
func (s *Searcher) Run(ctx context.Context, cfg Config) (model.Report, error) {
	if err := cfg.Validate(); err != nil {
		return model.Report{}, err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	params := eventlog.Params{
		Channels: eventlog.DefaultChannels,
		Window:   time.Duration(cfg.DayWindow) * 24 * time.Hour,
		EventIDs: eventlog.CrashEventIDs,
	}

	records, err := s.source.Query(ctx, s.srcCfg, params)
	if err != nil {
		return model.Report{}, mapQueryErr(err)
	}
	if err := ctx.Err(); err != nil {
		return model.Report{}, mapQueryErr(err)
	}
	slog.Debug("search: query complete", "records", len(records))

	eng := engine.New(matcher.New(cfg.ExecutablePath, cfg.DeepScan), classifier.New())
	entries := eng.ProcessBatch(records)
	slog.Debug("search: matching complete", "matched", len(entries))

	if err := ctx.Err(); err != nil {
		return model.Report{}, mapQueryErr(err)
	}

	// Terminal fallback: deep scan found nothing at all, so return the full
	// crash batch from both channels, unmatched, rather than an empty report.
	if len(entries) == 0 && cfg.DeepScan {
		fb := params
		fb.Channels = eventlog.FallbackChannels
		all, err := s.source.Query(ctx, s.srcCfg, fb)
		if err != nil {
			return model.Report{}, mapQueryErr(err)
		}
		entries = eng.ProcessUnfiltered(all)
		slog.Debug("search: terminal fallback", "records", len(entries))
	}

	if err := ctx.Err(); err != nil {
		return model.Report{}, mapQueryErr(err)
	}

	asm := report.New(report.Config{Dedup: cfg.Dedup, DedupWindow: cfg.DedupWindow})
	ordered, status := asm.Assemble(entries)

	return model.Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Executable:  filepath.Base(cfg.ExecutablePath),
		Path:        cfg.ExecutablePath,
		DayWindow:   cfg.DayWindow,
		DeepScan:    cfg.DeepScan,
		Status:      status,
		Entries:     ordered,
	}, nil
}

// mapQueryErr folds context deadline errors into the timeout sentinel so
// callers can distinguish "query took too long" from permission failures.
func mapQueryErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", eventlog.ErrTimeout, err)
	}
	return err
}
