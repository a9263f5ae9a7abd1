// Package config defines the benchmark configuration and parses it from
// command-line flags and MICROBENCH_-prefixed environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/agbru/microbench/internal/cli"
	"github.com/agbru/microbench/internal/clock"
	apperrors "github.com/agbru/microbench/internal/errors"
	"github.com/agbru/microbench/internal/logging"
	"github.com/agbru/microbench/internal/workload"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "MICROBENCH_"

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Clock selects the time source: "cpu" or "wall".
	Clock string
	// SumCount is the length of the float sequence summed by SumFloats.
	SumCount int
	// FibIndex is the index passed to Fibonacci.
	FibIndex int
	// Repeat is the number of timed invocations per workload.
	Repeat int
	// Format selects the output format: "text", "json" or "table".
	Format string
	// Verify enables result checks after each invocation.
	Verify bool
	// MetricsFile, if set, receives a Prometheus textfile after the run.
	MetricsFile string
	// LogLevel is the zerolog level name for stderr diagnostics.
	LogLevel string
	// LogFormat selects the diagnostic format: "console" or "json".
	LogFormat string
	// Details logs memory, host load and call-count diagnostics.
	Details bool
	// Progress shows a spinner on stderr while a workload runs.
	Progress bool
	// NoColor disables colours in styled output.
	NoColor bool
}

// Default returns the configuration of a run without arguments.
func Default() AppConfig {
	return AppConfig{
		Clock:     clock.NameCPU,
		SumCount:  workload.DefaultSumCount,
		FibIndex:  workload.DefaultFibIndex,
		Repeat:    1,
		Format:    cli.FormatText,
		Verify:    true,
		LogLevel:  "warn",
		LogFormat: logging.FormatConsole,
	}
}

// WorkloadParams converts the configuration into suite parameters.
func (c AppConfig) WorkloadParams() workload.Params {
	return workload.Params{SumCount: c.SumCount, FibIndex: c.FibIndex, Verify: c.Verify}
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Returns:
//   - error: A ValidationError naming the first invalid field, or nil.
func (c AppConfig) Validate() error {
	if c.Clock != clock.NameCPU && c.Clock != clock.NameWall {
		return apperrors.ValidationError{Field: "clock", Message: fmt.Sprintf("%q is not one of %s, %s", c.Clock, clock.NameCPU, clock.NameWall)}
	}
	if c.Repeat < 1 {
		return apperrors.ValidationError{Field: "repeat", Message: fmt.Sprintf("%d must be at least 1", c.Repeat)}
	}
	if c.SumCount < 0 {
		return apperrors.ValidationError{Field: "sum-count", Message: fmt.Sprintf("%d must not be negative", c.SumCount)}
	}
	if !slices.Contains(cli.Formats, c.Format) {
		return apperrors.ValidationError{Field: "format", Message: fmt.Sprintf("%q is not one of %s", c.Format, strings.Join(cli.Formats, ", "))}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.ValidationError{Field: "log-level", Message: err.Error()}
	}
	if !slices.Contains(logging.Formats, c.LogFormat) {
		return apperrors.ValidationError{Field: "log-format", Message: fmt.Sprintf("%q is not one of %s", c.LogFormat, strings.Join(logging.Formats, ", "))}
	}
	return nil
}

// ParseConfig parses command-line arguments, applies environment overrides
// for flags that were not set explicitly, and validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The arguments, excluding the program name.
//   - errorWriter: Where usage and parse errors are written.
//
// Returns:
//   - AppConfig: The resulting configuration.
//   - error: flag.ErrHelp for -h/-help, a ConfigError for malformed
//     arguments, a ValidationError for out-of-range values.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	cfg := Default()

	fs.StringVar(&cfg.Clock, "clock", cfg.Clock, "Time source: cpu (process user+system time) or wall.")
	fs.IntVar(&cfg.SumCount, "sum-count", cfg.SumCount, "Number of floats (1.0 .. N) summed by SumFloats.")
	fs.IntVar(&cfg.FibIndex, "fib", cfg.FibIndex, "Index passed to the recursive Fibonacci workload.")
	fs.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "Timed invocations per workload (one result each).")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text, json or table.")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Check workload results after timing.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics in textfile format to this path.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Diagnostic log level on stderr (debug, info, warn, error, disabled).")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Diagnostic log format on stderr: console or json.")
	fs.BoolVar(&cfg.Details, "details", false, "Log memory, host load and recursion diagnostics.")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show a spinner on stderr while a workload runs.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colours in table output.")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errorWriter, "Times SumFloats over 1.0 .. N and a naive recursive Fibonacci, printing\n")
		fmt.Fprintf(errorWriter, "one \"<Label>: <seconds>\" line per invocation.\n\n")
		fmt.Fprintf(errorWriter, "Every flag can also be set with a %s environment variable,\n", EnvPrefix)
		fmt.Fprintf(errorWriter, "e.g. %sCLOCK=wall. Flags take precedence.\n\nFlags:\n", EnvPrefix)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, fs)
	cfg.Clock = strings.ToLower(cfg.Clock)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return cfg, nil
}
