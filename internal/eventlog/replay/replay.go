// Package replay implements an event-log source backed by an NDJSON dump
// file. It exists for tests, CI, and inspecting exported logs on machines
// without access to the original event log.
package replay

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/crimson-sun/crashlens/internal/eventlog"
	"github.com/crimson-sun/crashlens/internal/model"
)

func init() {
	eventlog.Register("replay", func() eventlog.Source {
		return &Source{}
	})
}

// Source implements the eventlog.Source interface over an NDJSON record dump.
type Source struct{}

// record is one line of the dump file.
type record struct {
	Timestamp time.Time `json:"timestamp"`
	Channel   string    `json:"channel"`
	Provider  string    `json:"provider"`
	EventID   uint16    `json:"event_id"`
	Message   string    `json:"message"`
}

func (s *Source) Query(ctx context.Context, cfg eventlog.Config, params eventlog.Params) ([]model.LogRecord, error) {
	path := cfg.Extra["file"]
	if path == "" {
		return nil, fmt.Errorf("replay source: missing required config key \"file\" in Extra")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay source: %w: %v", eventlog.ErrSourceUnavailable, err)
	}
	defer f.Close()

	wantChannel := make(map[string]bool, len(params.Channels))
	for _, ch := range params.Channels {
		wantChannel[ch] = true
	}

	now := time.Now()
	var records []model.LogRecord

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			// Skip malformed lines rather than abort a partially good dump.
			continue
		}
		if len(wantChannel) > 0 && !wantChannel[rec.Channel] {
			continue
		}
		if !params.WantsEventID(rec.EventID) {
			continue
		}
		if !params.InWindow(rec.Timestamp, now) {
			continue
		}
		records = append(records, model.LogRecord{
			Timestamp: rec.Timestamp,
			Channel:   rec.Channel,
			Provider:  rec.Provider,
			EventID:   rec.EventID,
			Message:   rec.Message,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("replay source: read %s: %w", path, err)
	}
	return records, nil
}
