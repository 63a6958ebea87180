package split

import (
	"fmt"
	"math/big"
)

var (
	bigLinearConst = big.NewInt(LinearConst)
	bigLinearCoeff = big.NewInt(LinearCoeff)
	bigCubeOver24  = new(big.Int).SetUint64(CubeOver24)
)

// Leaf returns the closed-form triple of the single term with index a,
// i.e. the triple of the range [a, a+1).
//
// Term 0 is special-cased (P = Q = 1) because the general P factor
// (6a−5)(2a−1)(6a−1) is meaningless at a = 0.
//
// Complexity: O(1) big.Int operations on word-sized operands.
func Leaf(a uint32) Triple {
	if a == 0 {
		return Triple{
			P: big.NewInt(1),
			Q: big.NewInt(1),
			R: big.NewInt(LinearConst),
		}
	}

	k := int64(a)
	p := big.NewInt(6*k - 5)
	p.Mul(p, big.NewInt(2*k-1))
	p.Mul(p, big.NewInt(6*k-1))

	q := new(big.Int).SetUint64(uint64(a))
	q.Mul(q, q)
	q.Mul(q, big.NewInt(k))
	q.Mul(q, bigCubeOver24)

	r := new(big.Int).SetUint64(uint64(a))
	r.Mul(r, bigLinearCoeff)
	r.Add(r, bigLinearConst)
	r.Mul(r, p)
	if a%2 == 1 {
		r.Neg(r)
	}

	return Triple{P: p, Q: q, R: r}
}

// Combine merges the triple of [a, m) (left) with the triple of [m, b)
// (right) into the triple of [a, b):
//
//	P = Pl·Pr
//	Q = Ql·Qr
//	R = Rl·Qr + Pl·Rr
//
// Neither argument is modified; the result holds freshly allocated integers.
func Combine(left, right Triple) Triple {
	p := new(big.Int).Mul(left.P, right.P)
	q := new(big.Int).Mul(left.Q, right.Q)

	r := new(big.Int).Mul(left.R, right.Q)
	t := new(big.Int).Mul(left.P, right.R)
	r.Add(r, t)

	return Triple{P: p, Q: q, R: r}
}

// Split returns the exact triple of the term range [a, b), halving the range
// at m = ⌊(a+b)/2⌋ until single terms remain.
//
// Errors: ErrEmptyRange if a >= b.
//
// Complexity: 2(b−a)−1 evaluations, recursion depth ⌈log₂(b−a)⌉.
func Split(a, b uint32) (Triple, error) {
	if a >= b {
		return Triple{}, fmt.Errorf("%s(%d, %d): %w", MethodSplit, a, b, ErrEmptyRange)
	}

	return split(a, b), nil
}

// SplitAt evaluates [a, m) and [m, b) independently with Split and merges
// them. Whatever m is chosen inside (a, b), the result equals Split(a, b).
//
// Errors: ErrEmptyRange unless a < m < b.
func SplitAt(a, m, b uint32) (Triple, error) {
	if a >= m || m >= b {
		return Triple{}, fmt.Errorf("%s(%d, %d, %d): %w", MethodSplitAt, a, m, b, ErrEmptyRange)
	}

	return Combine(split(a, m), split(m, b)), nil
}

// split is the unchecked recursion behind Split; requires a < b.
func split(a, b uint32) Triple {
	if b-a == 1 {
		return Leaf(a)
	}
	m := midpoint(a, b)

	return Combine(split(a, m), split(m, b))
}

// midpoint returns ⌊(a+b)/2⌋ without overflowing uint32.
func midpoint(a, b uint32) uint32 {
	return a + (b-a)/2
}
