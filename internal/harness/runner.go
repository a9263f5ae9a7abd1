package harness

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/microbench/internal/clock"
	apperrors "github.com/agbru/microbench/internal/errors"
	"github.com/agbru/microbench/internal/logging"
)

// tracerName is the instrumentation scope of harness spans.
const tracerName = "github.com/agbru/microbench/internal/harness"

// Runner measures tasks with a single clock.
type Runner struct {
	clock    clock.Clock
	reporter Reporter
	recorder Recorder
	progress ProgressIndicator
	logger   logging.Logger
	tracer   trace.Tracer
}

// Option configures a Runner during construction.
type Option func(*Runner)

// WithReporter sets where measurements are reported. Defaults to a
// LineReporter on stdout.
func WithReporter(r Reporter) Option {
	return func(rn *Runner) { rn.reporter = r }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(rn *Runner) { rn.recorder = r }
}

// WithProgress sets the progress indicator shown while a task runs.
func WithProgress(p ProgressIndicator) Option {
	return func(rn *Runner) { rn.progress = p }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) Option {
	return func(rn *Runner) { rn.logger = l }
}

// WithTracer sets the tracer used for per-invocation spans. Defaults to the
// global OpenTelemetry tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(rn *Runner) { rn.tracer = t }
}

// New creates a Runner reading clk.
func New(clk clock.Clock, opts ...Option) *Runner {
	r := &Runner{clock: clk}
	for _, opt := range opts {
		opt(r)
	}
	if r.reporter == nil {
		r.reporter = NewLineReporter(os.Stdout)
	}
	if r.recorder == nil {
		r.recorder = nopRecorder{}
	}
	if r.progress == nil {
		r.progress = nopProgress{}
	}
	if r.logger == nil {
		r.logger = logging.NopLogger{}
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	return r
}

// Clock returns the clock used by the runner.
func (r *Runner) Clock() clock.Clock { return r.clock }

// Measure times one invocation of task and verifies its result. It does not
// report the measurement.
func (r *Runner) Measure(ctx context.Context, task Task, iteration int) Measurement {
	_, span := r.tracer.Start(ctx, task.Label, trace.WithAttributes(
		attribute.String("benchmark.clock", r.clock.Name()),
		attribute.Int("benchmark.iteration", iteration),
	))
	defer span.End()

	r.progress.Begin(task.Label)
	result, elapsed := task.Run(r.clock)
	r.progress.End()

	m := Measurement{
		Label:     task.Label,
		Iteration: iteration,
		Clock:     r.clock.Name(),
		Elapsed:   elapsed,
		Result:    result,
	}
	if err := task.Verify(result); err != nil {
		m.Err = apperrors.VerificationError{Workload: task.Label, Cause: err}
		span.RecordError(m.Err)
		span.SetStatus(codes.Error, "verification failed")
	}
	span.SetAttributes(attribute.Float64("benchmark.seconds", m.Seconds()))

	r.logger.Debug("workload measured",
		logging.String("workload", task.Label),
		logging.Int("iteration", iteration),
		logging.String("clock", m.Clock),
		logging.Duration("elapsed", elapsed),
	)
	return m
}

// Benchmark measures one invocation and reports it exactly once. The
// returned error is the verification error, if any, or a reporting error.
func (r *Runner) Benchmark(ctx context.Context, task Task, iteration int) (Measurement, error) {
	m := r.Measure(ctx, task, iteration)
	r.recorder.Observe(m)
	if err := r.reporter.Report(m); err != nil {
		return m, apperrors.WrapError(err, "reporting %s", task.Label)
	}
	return m, m.Err
}

// RunSuite benchmarks each task repeat times, in order. It stops at the
// first error or when ctx is done before an invocation starts. The reporter
// is flushed with whatever was measured.
func (r *Runner) RunSuite(ctx context.Context, tasks []Task, repeat int) ([]Measurement, error) {
	if repeat < 1 {
		repeat = 1
	}
	results := make([]Measurement, 0, len(tasks)*repeat)

	runErr := func() error {
		for _, task := range tasks {
			for it := 1; it <= repeat; it++ {
				if err := ctx.Err(); err != nil {
					return apperrors.WrapError(err, "benchmark suite interrupted before %s", task.Label)
				}
				m, err := r.Benchmark(ctx, task, it)
				results = append(results, m)
				if err != nil {
					r.logger.Error("benchmark failed", err, logging.String("workload", task.Label))
					return err
				}
			}
		}
		return nil
	}()

	if err := r.reporter.Flush(); err != nil && runErr == nil {
		runErr = apperrors.WrapError(err, "flushing results")
	}
	return results, runErr
}
