// Package ndjson writes one JSON object per report entry to stdout,
// followed by a trailer object carrying the overall status. Suited to
// piping into jq or another tool.
package ndjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/crashlens/internal/model"
	"github.com/crimson-sun/crashlens/internal/output"
)

// Output writes NDJSON-encoded report entries.
type Output struct {
	enc *json.Encoder
}

// New creates an NDJSON Output writing to stdout.
func New() *Output {
	return NewWriter(os.Stdout)
}

// NewWriter creates an NDJSON Output writing to w.
func NewWriter(w io.Writer) *Output {
	return &Output{enc: json.NewEncoder(w)}
}

func (o *Output) Write(_ context.Context, rep model.Report) error {
	for _, e := range rep.Entries {
		if err := o.enc.Encode(output.FormatEntry(e)); err != nil {
			return fmt.Errorf("ndjson output: %w", err)
		}
	}
	trailer := output.Trailer{
		ReportID: rep.ID,
		Status:   string(rep.Status),
		Entries:  len(rep.Entries),
	}
	if err := o.enc.Encode(trailer); err != nil {
		return fmt.Errorf("ndjson output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
