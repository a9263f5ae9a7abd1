// Package logging provides a unified logging interface for the benchmark harness.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while supporting multiple backends. Diagnostics always go to
// stderr so that stdout carries only benchmark results.
package logging
