// Package chudnovsky_test provides reference values shared across *_test.go
// files: a literal 100-digit prefix and an independent Machin-formula
// evaluation in fixed-point big.Int arithmetic.
package chudnovsky_test

import "math/big"

// pi100 is pi to 100 fractional digits.
const pi100 = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

// machinGuard are extra decimal places carried by machinPi before truncation.
const machinGuard = 10

// machinPi returns "3." plus digits fractional digits of pi computed as
// 16·arccot(5) − 4·arccot(239) in fixed point with 10^(digits+guard) as one.
func machinPi(digits int) string {
	unity := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits+machinGuard)), nil)

	pi := new(big.Int).Mul(big.NewInt(16), arccot(5, unity))
	pi.Sub(pi, new(big.Int).Mul(big.NewInt(4), arccot(239, unity)))

	s := pi.String()

	return s[:1] + "." + s[1:digits+1]
}

// arccot returns arccot(x)·unity by the alternating Taylor series.
func arccot(x int64, unity *big.Int) *big.Int {
	var (
		sum  = new(big.Int)
		xsq  = big.NewInt(x * x)
		term = new(big.Int).Quo(unity, big.NewInt(x))
		t    = new(big.Int)
		n    = int64(1)
		neg  = false
	)
	for term.Sign() != 0 {
		t.Quo(term, big.NewInt(n))
		if neg {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		term.Quo(term, xsq)
		n += 2
		neg = !neg
	}

	return sum
}
