package workload

import (
	"math"
	"testing"
)

func TestSumFloats_Empty(t *testing.T) {
	t.Parallel()
	if got := SumFloats(nil); got != 0 {
		t.Errorf("SumFloats(nil) = %v, want 0", got)
	}
	if got := SumFloats([]float64{}); got != 0 {
		t.Errorf("SumFloats([]) = %v, want 0", got)
	}
}

func TestSumFloats_ClosedForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    int
	}{
		{"single", 1},
		{"ten", 10},
		{"thousand", 1000},
		{"benchmark input", DefaultSumCount},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SumFloats(FloatSequence(tt.n))
			want := float64(tt.n) * float64(tt.n+1) / 2
			if rel := math.Abs(got-want) / want; rel > 1e-9 {
				t.Errorf("SumFloats(1..%d) = %v, want %v (rel err %g)", tt.n, got, want, rel)
			}
		})
	}
}

func TestSumFloats_BenchmarkValue(t *testing.T) {
	t.Parallel()
	got := SumFloats(FloatSequence(DefaultSumCount))
	// 149999 * 150000 / 2, exactly representable; every partial sum is an
	// integer below 2^53, so the sequential sum is exact too.
	const want = 1.1249925e10
	if got != want {
		t.Errorf("SumFloats(1..149999) = %v, want %v", got, want)
	}
	if ExpectedSum(DefaultSumCount) != want {
		t.Errorf("ExpectedSum(%d) = %v, want %v", DefaultSumCount, ExpectedSum(DefaultSumCount), want)
	}
}

// TestSumFloats_LeftToRight checks that accumulation follows slice order:
// adding 1 to 1e16 is lost to rounding, so the order is observable.
func TestSumFloats_LeftToRight(t *testing.T) {
	t.Parallel()
	got := SumFloats([]float64{1e16, 1, -1e16})
	if got != 0 {
		t.Errorf("SumFloats([1e16, 1, -1e16]) = %v, want 0 (sequential rounding)", got)
	}
	got = SumFloats([]float64{1e16, -1e16, 1})
	if got != 1 {
		t.Errorf("SumFloats([1e16, -1e16, 1]) = %v, want 1", got)
	}
}

func TestFloatSequence(t *testing.T) {
	t.Parallel()
	if got := FloatSequence(0); len(got) != 0 {
		t.Errorf("FloatSequence(0) has %d elements, want 0", len(got))
	}
	if got := FloatSequence(-5); len(got) != 0 {
		t.Errorf("FloatSequence(-5) has %d elements, want 0", len(got))
	}

	seq := FloatSequence(DefaultSumCount)
	if len(seq) != 149999 {
		t.Fatalf("len = %d, want 149999", len(seq))
	}
	if seq[0] != 1.0 || seq[len(seq)-1] != 149999.0 {
		t.Errorf("bounds = [%v, %v], want [1, 149999]", seq[0], seq[len(seq)-1])
	}
}

func TestCheckSum(t *testing.T) {
	t.Parallel()
	check := CheckSum(10)
	if err := check(55); err != nil {
		t.Errorf("CheckSum(10)(55) = %v, want nil", err)
	}
	if err := check(56); err == nil {
		t.Error("CheckSum(10)(56) should fail")
	}
	if err := CheckSum(0)(0); err != nil {
		t.Errorf("CheckSum(0)(0) = %v, want nil", err)
	}
	if err := CheckSum(0)(1); err == nil {
		t.Error("CheckSum(0)(1) should fail")
	}
}

func TestSumTolerance(t *testing.T) {
	t.Parallel()
	if got := SumTolerance(DefaultSumCount); got != 1e-9 {
		t.Errorf("SumTolerance(%d) = %g, want 1e-9", DefaultSumCount, got)
	}
	if got, want := SumTolerance(1<<30), float64(1<<30)*0x1p-53; got != want {
		t.Errorf("SumTolerance(2^30) = %g, want %g", got, want)
	}
}

// TestCheckSum_LargeCounts accumulates 1..n the way SumFloats does, without
// materialising the slice, for counts whose partial sums exceed 2^53.
func TestCheckSum_LargeCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large accumulation in short mode")
	}
	t.Parallel()
	for _, n := range []int{134217728, 200000000} {
		sum := 0.0
		for i := 1; i <= n; i++ {
			sum += float64(i)
		}
		if err := CheckSum(n)(sum); err != nil {
			t.Errorf("CheckSum(%d) rejected the sequential sum: %v", n, err)
		}
		if err := CheckSum(n)(ExpectedSum(n) * 1.001); err == nil {
			t.Errorf("CheckSum(%d) accepted a sum 0.1%% too large", n)
		}
	}
}
