// Package winlog implements the event-log source for the native Windows
// Event Log, queried through wevtapi. On other platforms the source
// registers but every query fails with ErrSourceUnavailable.
package winlog

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/crimson-sun/crashlens/internal/eventlog"
	"github.com/crimson-sun/crashlens/internal/model"
)

func init() {
	eventlog.Register("windows", func() eventlog.Source {
		return &Source{}
	})
}

// Source implements the eventlog.Source interface over wevtapi.
type Source struct{}

func (s *Source) Query(ctx context.Context, cfg eventlog.Config, params eventlog.Params) ([]model.LogRecord, error) {
	channels := params.Channels
	if len(channels) == 0 {
		channels = eventlog.DefaultChannels
	}
	xpath := buildXPath(params)

	now := time.Now()
	var records []model.LogRecord
	for _, channel := range channels {
		events, err := queryChannel(ctx, channel, xpath)
		if err != nil {
			return nil, fmt.Errorf("winlog: query %s: %w", channel, err)
		}
		for _, raw := range events {
			rec, err := parseEvent(channel, raw)
			if err != nil {
				slog.Debug("winlog: skipping unparseable event", "channel", channel, "err", err)
				continue
			}
			if !params.WantsEventID(rec.EventID) {
				continue
			}
			if !params.InWindow(rec.Timestamp, now) {
				continue
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

// buildXPath produces the wevtapi selector for the given params. The window
// is expressed with timediff so the log service does the time filtering;
// the Go side re-checks it after parsing.
func buildXPath(params eventlog.Params) string {
	var conds []string

	if len(params.EventIDs) > 0 {
		ids := make([]string, len(params.EventIDs))
		for i, id := range params.EventIDs {
			ids[i] = fmt.Sprintf("EventID=%d", id)
		}
		conds = append(conds, "("+strings.Join(ids, " or ")+")")
	}
	if params.Window > 0 {
		conds = append(conds, fmt.Sprintf("TimeCreated[timediff(@SystemTime) <= %d]", params.Window.Milliseconds()))
	}

	if len(conds) == 0 {
		return "*"
	}
	return "*[System[" + strings.Join(conds, " and ") + "]]"
}

// eventXML mirrors the fragment of the rendered event XML we care about.
type eventXML struct {
	System struct {
		Provider struct {
			Name string `xml:"Name,attr"`
		} `xml:"Provider"`
		EventID     string `xml:"EventID"`
		TimeCreated struct {
			SystemTime string `xml:"SystemTime,attr"`
		} `xml:"TimeCreated"`
		Channel string `xml:"Channel"`
	} `xml:"System"`
	EventData struct {
		Data []struct {
			Name  string `xml:"Name,attr"`
			Value string `xml:",chardata"`
		} `xml:"Data"`
	} `xml:"EventData"`
}

// parseEvent converts one rendered event XML document into a LogRecord.
// The message is the concatenated insertion strings — for crash events these
// carry the faulting application path, module name, and exception code, which
// is what the matcher and classifier inspect.
func parseEvent(channel, raw string) (model.LogRecord, error) {
	var ev eventXML
	if err := xml.Unmarshal([]byte(raw), &ev); err != nil {
		return model.LogRecord{}, fmt.Errorf("unmarshal event: %w", err)
	}

	id, err := strconv.ParseUint(strings.TrimSpace(ev.System.EventID), 10, 16)
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("parse event id %q: %w", ev.System.EventID, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, ev.System.TimeCreated.SystemTime)
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("parse timestamp %q: %w", ev.System.TimeCreated.SystemTime, err)
	}

	parts := make([]string, 0, len(ev.EventData.Data))
	for _, d := range ev.EventData.Data {
		v := strings.TrimSpace(d.Value)
		if v != "" {
			parts = append(parts, v)
		}
	}

	ch := ev.System.Channel
	if ch == "" {
		ch = channel
	}

	return model.LogRecord{
		Timestamp: ts,
		Channel:   ch,
		Provider:  ev.System.Provider.Name,
		EventID:   uint16(id),
		Message:   strings.Join(parts, "\n"),
	}, nil
}
