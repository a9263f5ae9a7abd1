package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/microbench/internal/cli"
	"github.com/agbru/microbench/internal/clock"
	"github.com/agbru/microbench/internal/config"
	apperrors "github.com/agbru/microbench/internal/errors"
	"github.com/agbru/microbench/internal/harness"
	"github.com/agbru/microbench/internal/logging"
	"github.com/agbru/microbench/internal/metrics"
	"github.com/agbru/microbench/internal/sysmon"
	"github.com/agbru/microbench/internal/ui"
	"github.com/agbru/microbench/internal/workload"
)

// Application represents the microbench application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	clock  clock.Clock
	logger logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithClock replaces the clock selected by the configuration.
func WithClock(c clock.Clock) AppOption {
	return func(a *Application) { a.clock = c }
}

// WithLogger replaces the stderr diagnostic logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "microbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the benchmark suite and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	logger := a.newLogger()

	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	clk := a.clock
	if clk == nil {
		c, fellBack, err := clock.New(a.Config.Clock)
		if err != nil {
			logger.Error("invalid clock", err)
			return apperrors.ExitErrorConfig
		}
		if fellBack {
			logger.Warn("process CPU time unavailable, measuring wall-clock time instead",
				logging.String("requested", a.Config.Clock))
		}
		clk = c
	}

	reporter, err := cli.NewReporter(a.Config.Format, out)
	if err != nil {
		logger.Error("invalid output format", err)
		return apperrors.ExitCodeFor(err)
	}

	opts := []harness.Option{harness.WithReporter(reporter), harness.WithLogger(logger)}
	var recorder *metrics.Recorder
	if a.Config.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		opts = append(opts, harness.WithRecorder(recorder))
	}
	if a.Config.Progress {
		opts = append(opts, harness.WithProgress(cli.NewSpinnerProgress(a.ErrWriter)))
	}
	runner := harness.New(clk, opts...)

	err = a.runSuite(ctx, runner, logger)

	if recorder != nil {
		if werr := recorder.WriteTextfile(a.Config.MetricsFile); werr != nil {
			werr = apperrors.WrapError(werr, "writing metrics to %s", a.Config.MetricsFile)
			logger.Error("metrics export failed", werr)
			if err == nil {
				err = werr
			}
		} else {
			logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
		}
	}

	if apperrors.IsContextError(err) {
		logger.Warn("benchmark run interrupted", logging.Err(err))
	}
	return apperrors.ExitCodeFor(err)
}

// runSuite runs the workloads and, with -details, logs diagnostics that
// are gathered outside the timed regions.
func (a *Application) runSuite(ctx context.Context, runner *harness.Runner, logger logging.Logger) error {
	tasks := workload.Suite(a.Config.WorkloadParams())

	if a.Config.Details {
		logger.Info("host load before run", sysmon.Sample().Fields()...)
	}

	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()
	_, err := runner.RunSuite(ctx, tasks, a.Config.Repeat)
	delta := mc.Snapshot().Since(before)

	if a.Config.Details {
		_, calls := workload.CountingFibonacci(a.Config.FibIndex)
		logger.Info("run details",
			logging.String("clock", runner.Clock().Name()),
			logging.Int("sum_count", a.Config.SumCount),
			logging.Int("fib_index", a.Config.FibIndex),
			logging.Uint64("fib_calls", calls),
			logging.Uint64("allocated_bytes", delta.Allocated),
			logging.Int("gc_cycles", int(delta.GCCycles)),
		)
	}
	return err
}

// newLogger returns the injected logger or a logger on ErrWriter in the
// configured format. -details raises the level to at least info so its
// entries are visible.
func (a *Application) newLogger() logging.Logger {
	if a.logger != nil {
		return a.logger
	}
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if a.Config.Details && level > zerolog.InfoLevel {
		level = zerolog.InfoLevel
	}
	return logging.New(a.ErrWriter, a.Config.LogFormat, level)
}

// IsHelpError checks if the error is a help flag error (-help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
