// Package chudnovsky computes decimal digits of pi with the Chudnovsky series.
//
// 🚀 How it works
//
//	1/pi = 12 Σ (−1)^k (6k)! (13591409 + 545140134k) / ((3k)! (k!)³ 640320^(3k+3/2))
//
//	The series is folded into an exact integer triple (P, Q, R) by
//	package split, after which a single big.Float evaluation
//
//	    pi ≈ 426880 · √10005 · Q / R
//
//	at a working precision of 4 bits per requested digit yields the result.
//	The square root is the only inexact step of the whole computation.
//
// ✨ Key features:
//   - pure function: no shared state, safe for concurrent callers
//   - about 14.18 digits per series term, one guard term on top
//   - recursive or explicit-stack splitting (WithEvaluator)
//   - optional zap tracing (WithLogger), silent by default
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pidigits/chudnovsky"
//
//	s, err := chudnovsky.Compute(50)
//	if errors.Is(err, chudnovsky.ErrInvalidArgument) {
//	  // digits == 0 or digits > MaxDigits
//	}
//	fmt.Println(s) // 3.14159265358979323846264338327950288419716939937510
//
// Output format: "3." followed by exactly digits fractional digits,
// truncated (not rounded) at the last requested position.
//
// Performance:
//
//   - Terms:  ⌈digits / 14.18⌉ + guard
//   - Time:   dominated by the root multiplications of the split
//   - Memory: P, Q, R near the root each carry O(digits) bits
package chudnovsky
