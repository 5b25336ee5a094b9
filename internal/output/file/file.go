// Package file writes the rendered text report to a path, so a report can
// be attached to a bug ticket or support request.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/crashlens/internal/model"
	"github.com/crimson-sun/crashlens/internal/output"
)

const defaultBufSize = 64 * 1024

// Output appends rendered reports to a file with buffered I/O.
type Output struct {
	mu   sync.Mutex
	f    *os.File
	w    *bufio.Writer
	path string
}

// New creates a file output appending to the given path.
func New(path string) (*Output, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	return &Output{
		f:    f,
		w:    bufio.NewWriterSize(f, defaultBufSize),
		path: path,
	}, nil
}

// Write renders the report as text and appends it to the file.
func (o *Output) Write(_ context.Context, rep model.Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.w.WriteString(output.RenderText(rep)); err != nil {
		return fmt.Errorf("file output: write %s: %w", o.path, err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush %s: %w", o.path, err)
	}
	return o.f.Close()
}
