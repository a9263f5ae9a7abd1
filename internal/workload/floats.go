package workload

import (
	"fmt"
	"math"
)

// DefaultSumCount is the length of the float sequence summed by the suite.
const DefaultSumCount = 149999

// sumTolerance is the minimum relative tolerance accepted by CheckSum.
const sumTolerance = 1e-9

// unitRoundoff is the float64 unit roundoff, 2^-53.
const unitRoundoff = 0x1p-53

// SumFloats returns the sum of floats accumulated sequentially from the
// first element to the last. An empty slice sums to 0.
func SumFloats(floats []float64) float64 {
	sum := 0.0
	for _, f := range floats {
		sum += f
	}
	return sum
}

// FloatSequence returns 1.0, 2.0, ..., float64(n). It returns an empty
// slice when n <= 0.
func FloatSequence(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	arr := make([]float64, 0, n)
	for i := 1; i <= n; i++ {
		arr = append(arr, float64(i))
	}
	return arr
}

// ExpectedSum is the closed form n(n+1)/2 of FloatSequence(n).
func ExpectedSum(n int) float64 {
	if n <= 0 {
		return 0
	}
	fn := float64(n)
	return fn * (fn + 1) / 2
}

// SumTolerance returns the relative error CheckSum accepts for a
// left-to-right sum of n terms. Once partial sums pass 2^53 each addition
// may round, so the bound grows linearly with n.
func SumTolerance(n int) float64 {
	return max(sumTolerance, float64(n)*unitRoundoff)
}

// CheckSum returns a check that accepts a sum of FloatSequence(n).
func CheckSum(n int) func(float64) error {
	want := ExpectedSum(n)
	tol := SumTolerance(n)
	return func(got float64) error {
		if want == 0 {
			if got != 0 {
				return fmt.Errorf("got %v, want 0", got)
			}
			return nil
		}
		if rel := math.Abs(got-want) / want; rel > tol {
			return fmt.Errorf("got %v, want %v (relative error %g)", got, want, rel)
		}
		return nil
	}
}
