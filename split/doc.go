// Package split evaluates the Chudnovsky series by binary splitting.
//
// 🚀 What is binary splitting?
//
//	A sum of rational terms Σ a(k) over k ∈ [a, b) is folded into one exact
//	integer triple (P, Q, R) by halving the range, evaluating both halves and
//	merging them with a fixed algebraic rule. No division happens until the
//	very end, so no rounding error accumulates.
//
// ✨ Key features:
//   - exact math/big arithmetic end to end
//   - Split: natural recursion, depth O(log n)
//   - SplitStack: explicit worklist, same result without native recursion
//   - SplitAt: caller-chosen first split point (associativity checks)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pidigits/split"
//
//	t, err := split.Split(0, 8)
//	if err != nil {
//	  // only ErrEmptyRange is possible
//	}
//	fmt.Println(t.Q, t.R)
//
// Leaf formulas (term index a):
//
//	a == 0: P = 1, Q = 1, R = 13591409
//	a  > 0: P = (6a−5)(2a−1)(6a−1)
//	        Q = a³ · 10939058860032000        (640320³ / 24)
//	        R = (−1)^a · P · (13591409 + 545140134·a)
//
// Merge rule for [a,m) ⊕ [m,b):
//
//	P = Pl·Pr,  Q = Ql·Qr,  R = Rl·Qr + Pl·Rr
//
// Performance:
//
//   - Depth:  O(log n)
//   - Cost:   dominated by the root multiplications; math/big switches to
//     Karatsuba for large operands, so the total is sub-quadratic.
package split
