package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Recorder appends StepStats rows to a CSV stream. The header is written
// with the first row. A nil *Recorder discards everything, so callers can
// leave output disabled without branching.
type Recorder struct {
	w             io.Writer
	headerWritten bool
	rows          int
}

// NewRecorder returns a Recorder writing to w, or nil when w is nil.
func NewRecorder(w io.Writer) *Recorder {
	if w == nil {
		return nil
	}
	return &Recorder{w: w}
}

// Write records one row.
func (r *Recorder) Write(s StepStats) error {
	if r == nil {
		return nil
	}
	records := []StepStats{s}

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}
	r.rows++
	return nil
}

// Rows returns the number of rows written.
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	return r.rows
}
