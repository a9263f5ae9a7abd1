package workload

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFibonacci_Recurrence_PropertyBased verifies F(i) = F(i-1) + F(i-2)
// for random indices above the base case.
func TestFibonacci_Recurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("Fibonacci satisfies its recurrence", prop.ForAll(
		func(i int) bool {
			return Fibonacci(i) == Fibonacci(i-1)+Fibonacci(i-2)
		},
		gen.IntRange(2, 22),
	))

	properties.Property("Fibonacci is 1 below 2", prop.ForAll(
		func(i int) bool {
			return Fibonacci(i) == 1
		},
		gen.IntRange(-1000, 1),
	))

	properties.TestingRun(t)
}

// TestSumFloats_ClosedForm_PropertyBased verifies the sum of 1..n matches
// n(n+1)/2. Every partial sum is an integer below 2^53, so the result is exact.
func TestSumFloats_ClosedForm_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("sum of 1..n equals n(n+1)/2", prop.ForAll(
		func(n int) bool {
			return SumFloats(FloatSequence(n)) == ExpectedSum(n)
		},
		gen.IntRange(0, 200000),
	))

	properties.Property("sum is invariant under append of zero", prop.ForAll(
		func(xs []float64) bool {
			a := SumFloats(xs)
			b := SumFloats(append(append([]float64{}, xs...), 0))
			return a == b || (math.IsNaN(a) && math.IsNaN(b))
		},
		gen.SliceOf(gen.Float64Range(-1e6, 1e6)),
	))

	properties.TestingRun(t)
}
