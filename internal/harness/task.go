package harness

import (
	"fmt"
	"time"

	"github.com/agbru/microbench/internal/clock"
)

// Task is a labelled workload invocation with its argument already bound.
type Task struct {
	// Label names the workload in output, logs, spans and metrics.
	Label string

	invoke func(clock.Clock) (any, time.Duration)
	check  func(any) error
}

// Time calls fn(arg) between two readings of clk and returns the result and
// the elapsed reading. A reading that goes backwards is reported as zero.
func Time[A, R any](clk clock.Clock, fn func(A) R, arg A) (R, time.Duration) {
	start := clk.Read()
	result := fn(arg)
	elapsed := clk.Read() - start
	if elapsed < 0 {
		elapsed = 0
	}
	return result, elapsed
}

// Bind builds a Task that calls fn(arg). Each check runs after timing and
// receives the result; the first failing check becomes the measurement error.
func Bind[A, R any](label string, fn func(A) R, arg A, checks ...func(R) error) Task {
	t := Task{
		Label: label,
		invoke: func(clk clock.Clock) (any, time.Duration) {
			return Time(clk, fn, arg)
		},
	}
	if len(checks) > 0 {
		t.check = func(v any) error {
			r, ok := v.(R)
			if !ok {
				return fmt.Errorf("unexpected result type %T", v)
			}
			for _, c := range checks {
				if err := c(r); err != nil {
					return err
				}
			}
			return nil
		}
	}
	return t
}

// Run times a single invocation of the task on clk without reporting it.
func (t Task) Run(clk clock.Clock) (any, time.Duration) {
	if t.invoke == nil {
		return nil, 0
	}
	return t.invoke(clk)
}

// Verify applies the task's checks to result. Tasks without checks accept
// every result.
func (t Task) Verify(result any) error {
	if t.check == nil {
		return nil
	}
	return t.check(result)
}
