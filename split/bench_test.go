package split_test

import (
	"testing"

	"github.com/katalvlaran/pidigits/split"
)

// benchmarkSplit runs fn over [0, n) and fails on unexpected errors.
func benchmarkSplit(b *testing.B, n uint32, fn func(a, b uint32) (split.Triple, error)) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(0, n); err != nil {
			b.Fatalf("split failed: %v", err)
		}
	}
}

// BenchmarkSplit_Recursive_1k covers roughly 14k digits worth of terms.
func BenchmarkSplit_Recursive_1k(b *testing.B) { benchmarkSplit(b, 1000, split.Split) }

// BenchmarkSplit_Stack_1k is the worklist counterpart.
func BenchmarkSplit_Stack_1k(b *testing.B) { benchmarkSplit(b, 1000, split.SplitStack) }

func BenchmarkSplit_Recursive_10k(b *testing.B) { benchmarkSplit(b, 10000, split.Split) }

func BenchmarkSplit_Stack_10k(b *testing.B) { benchmarkSplit(b, 10000, split.SplitStack) }
