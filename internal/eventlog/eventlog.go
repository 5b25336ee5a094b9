package eventlog

import (
	"context"
	"errors"
	"time"

	"github.com/crimson-sun/crashlens/internal/model"
)

// Crash-related event IDs: application error, error reporting, application hang.
var CrashEventIDs = []uint16{1000, 1001, 1002}

// DefaultChannels is the channel list queried by a normal search.
var DefaultChannels = []string{"Application"}

// FallbackChannels is the channel list queried by the terminal fallback search.
var FallbackChannels = []string{"Application", "System"}

// Sentinel errors surfaced by sources. Callers match with errors.Is.
var (
	// ErrAccessDenied means the OS refused access to the log. Fatal to the
	// search; the user must run elevated. Never retried.
	ErrAccessDenied = errors.New("event log access denied")

	// ErrSourceUnavailable means the channel is missing or the log service
	// cannot be reached. Fatal; not retried.
	ErrSourceUnavailable = errors.New("event log source unavailable")

	// ErrTimeout means the query exceeded its time bound. The caller may
	// retry once; sources never retry automatically.
	ErrTimeout = errors.New("event log query timed out")
)

// Source defines the interface all event-log sources must implement.
type Source interface {
	// Query fetches records matching the given parameters. Each call
	// re-queries the underlying log; results are never cached across calls.
	// Any OS handle is acquired and released within the call, on all exit
	// paths.
	Query(ctx context.Context, cfg Config, params Params) ([]model.LogRecord, error)
}

// Config holds source-specific connection settings.
type Config struct {
	Provider string
	Extra    map[string]string
}

// Params defines filters for an event-log query.
type Params struct {
	Channels []string
	Window   time.Duration // only records in [now-Window, now]; <=0 means unbounded
	EventIDs []uint16      // empty means no event-ID filter
}

// InWindow reports whether ts falls inside [now-Window, now].
func (p Params) InWindow(ts, now time.Time) bool {
	if p.Window <= 0 {
		return !ts.After(now)
	}
	return !ts.After(now) && !ts.Before(now.Add(-p.Window))
}

// WantsEventID reports whether id passes the event-ID filter.
func (p Params) WantsEventID(id uint16) bool {
	if len(p.EventIDs) == 0 {
		return true
	}
	for _, want := range p.EventIDs {
		if id == want {
			return true
		}
	}
	return false
}
