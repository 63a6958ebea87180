package chudnovsky

import (
	"math"

	"github.com/katalvlaran/pidigits/split"
)

const (
	// ShortPi is returned for a one-digit request without running the series.
	ShortPi = "3.1"

	// BitsPerDigit is the working precision, in bits, carried per requested
	// decimal digit (log₂10 ≈ 3.32 plus guard).
	BitsPerDigit = 4

	// MaxDigits is the largest digit count whose working precision fits in
	// uint32: (2³²−1)/4.
	MaxDigits = math.MaxUint32 / BitsPerDigit

	// MinPrecision is the floor of the working precision in bits.
	MinPrecision = 64

	// DefaultGuardTerms is the number of series terms evaluated beyond the
	// asymptotic minimum.
	DefaultGuardTerms = 1

	// formatGuardDigits are rendered past the last requested digit and then
	// cut, so that the kept digits are truncated rather than rounded.
	formatGuardDigits = 10

	// numeratorScale and sqrtOperand form the constant 426880·√10005
	// (= 640320^(3/2) / 12).
	numeratorScale = 426880
	sqrtOperand    = 10005
)

// DigitsPerTerm is the number of decimal digits each additional series term
// contributes asymptotically: log₁₀((640320³/24) / (6·2·6)) ≈ 14.1816.
var DigitsPerTerm = math.Log10(float64(split.CubeOver24) / (6 * 2 * 6))
