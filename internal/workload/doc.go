// Package workload holds the routines whose execution time is measured and
// the suite that binds them to their benchmark inputs.
//
// The routines are deliberately naive: SumFloats accumulates left to right
// with plain float64 addition and Fibonacci recurses without memoization.
// Changing either would change what the benchmark measures.
package workload
