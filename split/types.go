package split

import (
	"errors"
	"math/big"
)

// ErrEmptyRange is returned when a term range [a, b) holds no terms (a >= b),
// or when a split point does not fall strictly inside it.
var ErrEmptyRange = errors.New("split: empty term range")

// Method names used to prefix wrapped errors.
const (
	MethodSplit      = "Split"
	MethodSplitAt    = "SplitAt"
	MethodSplitStack = "SplitStack"
)

// Series constants of the Chudnovsky formula.
const (
	// LinearConst is the constant part of the term numerator (13591409 + 545140134·k).
	LinearConst = 13591409

	// LinearCoeff is the linear coefficient of the term numerator.
	LinearCoeff = 545140134

	// CubeOver24 is 640320³ / 24, the per-term denominator factor.
	CubeOver24 = 10939058860032000
)

// Triple is the exact state of a term range.
//
// Fields:
//   - P - product of the (6k−5)(2k−1)(6k−1) factors; always positive.
//   - Q - product of the k³·640320³/24 factors; always positive.
//   - R - partial numerator; sign follows term parity.
//
// A Triple returned by this package owns its integers; callers may keep it,
// but package functions never mutate an argument Triple.
type Triple struct {
	P *big.Int
	Q *big.Int
	R *big.Int
}

// Equal reports whether t and u hold the same three integers.
func (t Triple) Equal(u Triple) bool {
	return t.P.Cmp(u.P) == 0 && t.Q.Cmp(u.Q) == 0 && t.R.Cmp(u.R) == 0
}
