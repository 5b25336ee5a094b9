package crashlens

import (
	"context"
	"fmt"

	"github.com/crimson-sun/crashlens/internal/eventlog"
	"github.com/crimson-sun/crashlens/internal/search"

	// Register event-log source implementations.
	_ "github.com/crimson-sun/crashlens/internal/eventlog/replay"
	_ "github.com/crimson-sun/crashlens/internal/eventlog/winlog"
)

// Sentinel errors returned by Find. Match with errors.Is.
var (
	// ErrAccessDenied: the OS refused event-log access. Re-run elevated.
	ErrAccessDenied = eventlog.ErrAccessDenied
	// ErrSourceUnavailable: the log channel is missing or unreachable.
	ErrSourceUnavailable = eventlog.ErrSourceUnavailable
	// ErrTimeout: the query exceeded the configured bound.
	ErrTimeout = eventlog.ErrTimeout
)

// Finder runs crash searches against an event-log source.
type Finder struct {
	searcher *search.Searcher
	opts     options
}

// New creates a Finder. Cheap to construct; create per source configuration
// and reuse across searches.
func New(opts ...Option) (*Finder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctor, err := eventlog.Get(o.source)
	if err != nil {
		return nil, fmt.Errorf("crashlens: %w", err)
	}
	srcCfg := eventlog.Config{Provider: o.source}
	if o.replayFile != "" {
		srcCfg.Extra = map[string]string{"file": o.replayFile}
	}

	return &Finder{
		searcher: search.New(ctor(), srcCfg),
		opts:     o,
	}, nil
}

// Find searches the event log for crashes of the executable at exePath and
// returns the assembled report, newest entry first. An empty result is not
// an error: the report comes back with StatusNoMatches.
func (f *Finder) Find(ctx context.Context, exePath string) (Report, error) {
	rep, err := f.searcher.Run(ctx, search.Config{
		ExecutablePath: exePath,
		DayWindow:      f.opts.dayWindow,
		DeepScan:       f.opts.deepScan,
		Timeout:        f.opts.timeout,
		Dedup:          f.opts.dedup,
		DedupWindow:    f.opts.dedupWindow,
	})
	if err != nil {
		return Report{}, fmt.Errorf("crashlens: %w", err)
	}
	return reportFromInternal(rep), nil
}
