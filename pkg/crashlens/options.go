package crashlens

import "time"

type options struct {
	source      string
	replayFile  string
	dayWindow   int
	deepScan    bool
	timeout     time.Duration
	dedup       bool
	dedupWindow time.Duration
}

// Option configures a Finder.
type Option func(*options)

// WithSource selects the event-log source: "windows" (default) or "replay".
func WithSource(name string) Option {
	return func(o *options) { o.source = name }
}

// WithReplayFile sets the NDJSON dump read by the replay source.
func WithReplayFile(path string) Option {
	return func(o *options) { o.replayFile = path }
}

// WithDayWindow sets the search period in days: 2, 3, 7 or 14. Default: 2.
func WithDayWindow(days int) Option {
	return func(o *options) { o.dayWindow = days }
}

// WithDeepScan enables fuzzy and folder matching, plus the general fallback
// when nothing matches. Default: off.
func WithDeepScan(on bool) Option {
	return func(o *options) { o.deepScan = on }
}

// WithTimeout bounds each query; past the bound Find fails with ErrTimeout.
// Default: no timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithDedup collapses repeated identical crashes inside the given window
// into one entry with a count. A non-positive window uses the default.
func WithDedup(window time.Duration) Option {
	return func(o *options) {
		o.dedup = true
		o.dedupWindow = window
	}
}

func defaultOptions() options {
	return options{
		source:    "windows",
		dayWindow: 2,
	}
}
