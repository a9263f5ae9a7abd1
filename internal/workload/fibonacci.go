package workload

import "fmt"

// DefaultFibIndex is the Fibonacci index computed by the suite.
const DefaultFibIndex = 21

// Fibonacci returns 1 for i < 2 and Fibonacci(i-1) + Fibonacci(i-2)
// otherwise. Negative indices fall into the base case.
func Fibonacci(i int) int {
	if i < 2 {
		return 1
	}
	return Fibonacci(i-1) + Fibonacci(i-2)
}

// CountingFibonacci runs the same recursion as Fibonacci and also returns
// the number of calls it made, including the outermost one.
func CountingFibonacci(i int) (int, uint64) {
	var calls uint64
	var rec func(int) int
	rec = func(i int) int {
		calls++
		if i < 2 {
			return 1
		}
		return rec(i-1) + rec(i-2)
	}
	v := rec(i)
	return v, calls
}

// fibonacciIterative computes the same sequence in linear time.
func fibonacciIterative(i int) int {
	a, b := 1, 1
	for k := 2; k <= i; k++ {
		a, b = b, a+b
	}
	return b
}

// CheckFibonacci returns a check that accepts Fibonacci(i).
func CheckFibonacci(i int) func(int) error {
	want := fibonacciIterative(i)
	return func(got int) error {
		if got != want {
			return fmt.Errorf("got %d, want %d", got, want)
		}
		return nil
	}
}
