package workload

import "github.com/agbru/microbench/internal/harness"

// Labels printed for each workload.
const (
	LabelSumFloats = "SumFloats"
	LabelFibonacci = "Fibonacci"
)

// Params configures the inputs of the suite.
type Params struct {
	// SumCount is the length of the sequence passed to SumFloats.
	SumCount int
	// FibIndex is the index passed to Fibonacci.
	FibIndex int
	// Verify attaches result checks to each task.
	Verify bool
}

// DefaultParams returns the parameters of the historical benchmark run.
func DefaultParams() Params {
	return Params{SumCount: DefaultSumCount, FibIndex: DefaultFibIndex, Verify: true}
}

// Suite returns the benchmark tasks in execution order: the float sum
// first, then Fibonacci. The float sequence is built here, before any
// timing starts.
func Suite(p Params) []harness.Task {
	floats := FloatSequence(p.SumCount)

	var sumChecks []func(float64) error
	var fibChecks []func(int) error
	if p.Verify {
		sumChecks = append(sumChecks, CheckSum(p.SumCount))
		fibChecks = append(fibChecks, CheckFibonacci(p.FibIndex))
	}

	return []harness.Task{
		harness.Bind(LabelSumFloats, SumFloats, floats, sumChecks...),
		harness.Bind(LabelFibonacci, Fibonacci, p.FibIndex, fibChecks...),
	}
}
