package harness

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/microbench/internal/format"
)

// Measurement is the outcome of one timed invocation.
type Measurement struct {
	// Label is the task label.
	Label string
	// Iteration counts invocations of the same task, starting at 1.
	Iteration int
	// Clock names the clock that produced Elapsed.
	Clock string
	// Elapsed is the measured duration; never negative.
	Elapsed time.Duration
	// Result is the value returned by the workload.
	Result any
	// Err is set when the result failed verification.
	Err error
}

// Seconds returns Elapsed in seconds.
func (m Measurement) Seconds() float64 { return m.Elapsed.Seconds() }

// Reporter receives measurements as they are produced.
type Reporter interface {
	// Report is called once per invocation, in execution order.
	Report(m Measurement) error
	// Flush is called once after the last invocation.
	Flush() error
}

// Recorder observes measurements for metrics export.
type Recorder interface {
	Observe(m Measurement)
}

// ProgressIndicator is notified around each timed invocation.
type ProgressIndicator interface {
	Begin(label string)
	End()
}

// LineReporter writes "<Label>: <seconds>" for every measurement as soon as
// it is reported.
type LineReporter struct {
	w io.Writer
}

var _ Reporter = (*LineReporter)(nil)

// NewLineReporter returns a LineReporter writing to w.
func NewLineReporter(w io.Writer) *LineReporter {
	return &LineReporter{w: w}
}

// Report writes one line.
func (r *LineReporter) Report(m Measurement) error {
	_, err := fmt.Fprintf(r.w, "%s: %s\n", m.Label, format.FormatSeconds(m.Elapsed))
	return err
}

// Flush is a no-op; lines are written unbuffered.
func (r *LineReporter) Flush() error { return nil }

type nopRecorder struct{}

func (nopRecorder) Observe(Measurement) {}

type nopProgress struct{}

func (nopProgress) Begin(string) {}
func (nopProgress) End()         {}
