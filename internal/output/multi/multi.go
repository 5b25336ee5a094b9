// Package multi fans a report out to several outputs, e.g. text on stdout
// plus a file copy.
package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/crashlens/internal/model"
	"github.com/crimson-sun/crashlens/internal/output"
)

// Multi fans out reports to multiple output.Output implementations.
// If one output fails, the remaining outputs still receive the report.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi that fans out to the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// Write delivers the report to every wrapped output. Errors are collected
// but do not prevent delivery to subsequent outputs.
func (m *Multi) Write(ctx context.Context, rep model.Report) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, rep); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
