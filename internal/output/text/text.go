// Package text writes the human-readable report form to a writer
// (stdout by default).
package text

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/crashlens/internal/model"
	"github.com/crimson-sun/crashlens/internal/output"
)

// Output renders reports as text.
type Output struct {
	w io.Writer
}

// New creates a text Output writing to stdout.
func New() *Output {
	return &Output{w: os.Stdout}
}

// NewWriter creates a text Output writing to w.
func NewWriter(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Write(_ context.Context, rep model.Report) error {
	if _, err := io.WriteString(o.w, output.RenderText(rep)); err != nil {
		return fmt.Errorf("text output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
