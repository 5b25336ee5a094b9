package output

import (
	"fmt"
	"strings"

	"github.com/crimson-sun/crashlens/internal/model"
)

// RenderText renders a report as the human-readable text form used by the
// text and file outputs.
func RenderText(rep model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CRASHLENS REPORT %s\n", rep.ID)
	fmt.Fprintf(&b, "Executable: %s (%s)\n", rep.Executable, rep.Path)
	fmt.Fprintf(&b, "Period:     last %d days\n", rep.DayWindow)
	fmt.Fprintf(&b, "Deep scan:  %s\n", onOff(rep.DeepScan))
	fmt.Fprintf(&b, "Generated:  %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("-", 64) + "\n")

	if len(rep.Entries) == 0 {
		fmt.Fprintf(&b, "No crash events found for %s in the selected period.\n", rep.Executable)
		return b.String()
	}

	if generalResult(rep) {
		b.WriteString("No events matched the executable. Showing every crash event\n")
		b.WriteString("from the Application and System channels for the period.\n")
		b.WriteString(strings.Repeat("-", 64) + "\n")
	}

	for i, e := range rep.Entries {
		rec := e.Match.Record
		fmt.Fprintf(&b, "[%d] %s  %s/%s (event %d)\n",
			i+1, rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Channel, rec.Provider, rec.EventID)
		if e.Match.Matched {
			fmt.Fprintf(&b, "    Match:    %s (confidence %.2f)\n", e.Match.Reason, e.Match.Confidence)
		}
		if e.Category != "" {
			fmt.Fprintf(&b, "    Category: %s\n", e.Category)
			fmt.Fprintf(&b, "    %s\n", e.Explanation)
		} else {
			b.WriteString("    Category: unclassified crash\n")
		}
		if e.Summary != "" {
			fmt.Fprintf(&b, "    Event:    %s\n", e.Summary)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%d crash event(s).\n", len(rep.Entries))
	return b.String()
}

// generalResult reports whether the entries are the terminal-fallback batch:
// nothing matched, everything is shown.
func generalResult(rep model.Report) bool {
	if !rep.DeepScan {
		return false
	}
	for _, e := range rep.Entries {
		if e.Match.Matched {
			return false
		}
	}
	return true
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
