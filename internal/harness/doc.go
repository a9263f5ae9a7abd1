// Package harness times workloads and reports one measurement per invocation.
//
// A Task binds a function to its argument with the generic Bind helper. The
// Runner reads its Clock immediately before and after the call, runs any
// result checks outside the timed region, and hands the Measurement to a
// Reporter (stdout lines by default) and an optional metrics Recorder.
// Workloads run sequentially on the calling goroutine and are never
// interrupted; a cancelled context only prevents the next invocation.
package harness
