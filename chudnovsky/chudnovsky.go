package chudnovsky

import (
	"math"
	"math/big"
	"math/bits"
	"time"

	"go.uber.org/zap"
)

// Params are the quantities derived from a digit count before any series
// evaluation takes place.
type Params struct {
	// Digits is the requested number of fractional digits.
	Digits uint32

	// Precision is the big.Float mantissa width, in bits, used for the
	// square root and the final quotient.
	Precision uint

	// Terms is ⌈Digits / DigitsPerTerm⌉, the asymptotic term count.
	Terms uint32

	// GuardTerms are evaluated on top of Terms.
	GuardTerms uint32
}

// TotalTerms is the upper bound n of the evaluated range [0, n).
func (p Params) TotalTerms() uint32 {
	return p.Terms + p.GuardTerms
}

// Plan validates digits and derives the working parameters without
// computing anything. Compute shares the same validation.
//
// Errors: ErrInvalidArgument if digits == 0, digits > MaxDigits, or the
// guard terms push the range bound past math.MaxUint32.
func Plan(digits uint32, opts ...Option) (Params, error) {
	cfg := newEngineConfig(opts...)

	return plan(MethodPlan, digits, cfg)
}

// plan is the shared validation and derivation step.
func plan(method string, digits uint32, cfg engineConfig) (Params, error) {
	if digits == 0 {
		return Params{}, invalidf(method, "digit count must be greater than 0")
	}
	// Same check as a checked multiply: any carry into the high word means
	// digits·4 does not fit the precision type.
	hi, prec := bits.Mul32(digits, BitsPerDigit)
	if hi != 0 {
		return Params{}, invalidf(method, "digit count too large: %d > %d", digits, uint32(MaxDigits))
	}
	if prec < MinPrecision {
		prec = MinPrecision
	}
	terms := uint32(math.Ceil(float64(digits) / DigitsPerTerm))
	if _, carry := bits.Add32(terms, cfg.guardTerms, 0); carry != 0 {
		return Params{}, invalidf(method, "term count too large: %d + %d guard terms", terms, cfg.guardTerms)
	}

	return Params{
		Digits:     digits,
		Precision:  uint(prec),
		Terms:      terms,
		GuardTerms: cfg.guardTerms,
	}, nil
}

// Compute returns pi as "3." followed by exactly digits fractional digits.
//
// Steps:
//  1. Validate: digits == 0, digits > MaxDigits or a term count that
//     overflows uint32 → ErrInvalidArgument; digits == 1 → ShortPi.
//  2. Derive precision (4 bits/digit) and term count n.
//  3. (_, Q, R) = split over [0, n).
//  4. pi = 426880 · √10005 · Q / R at the working precision.
//  5. Render and truncate.
//
// Validation failures are detected before any series work. Compute is pure
// and safe for concurrent use; it cannot be cancelled once started.
func Compute(digits uint32, opts ...Option) (string, error) {
	cfg := newEngineConfig(opts...)
	params, err := plan(MethodCompute, digits, cfg)
	if err != nil {
		cfg.logger.Debug("chudnovsky: rejected", zap.Uint32("digits", digits), zap.Error(err))

		return "", err
	}
	if digits == 1 {
		return ShortPi, nil
	}

	log := cfg.logger.With(
		zap.Uint32("digits", params.Digits),
		zap.Uint("precision", params.Precision),
		zap.Uint32("terms", params.TotalTerms()),
		zap.Stringer("evaluator", cfg.evaluator),
	)
	log.Debug("chudnovsky: compute: enter")
	start := time.Now()

	t, err := cfg.evaluator.fn()(0, params.TotalTerms())
	if err != nil {
		// Unreachable for a validated plan: Terms >= 1 and the sum did not wrap.
		return "", err
	}
	splitDone := time.Now()

	pi := combine(t.Q, t.R, params.Precision)
	out := format(pi, params.Digits)

	log.Debug("chudnovsky: compute: exit",
		zap.Duration("split", splitDone.Sub(start)),
		zap.Duration("combine", time.Since(splitDone)),
		zap.Int("q_bits", t.Q.BitLen()),
		zap.Int("r_bits", t.R.BitLen()),
	)

	return out, nil
}

// combine evaluates 426880 · √10005 · q / r with every operand and
// intermediate rounded to prec bits. The square root is the only inexact
// operation on exact inputs.
func combine(q, r *big.Int, prec uint) *big.Float {
	root := new(big.Float).SetPrec(prec).SetInt64(sqrtOperand)
	root.Sqrt(root)

	num := new(big.Float).SetPrec(prec).SetInt64(numeratorScale)
	num.Mul(num, root)
	num.Mul(num, new(big.Float).SetPrec(prec).SetInt(q))

	den := new(big.Float).SetPrec(prec).SetInt(r)

	return new(big.Float).SetPrec(prec).Quo(num, den)
}

// format renders x in fixed notation and keeps "3." plus digits fractional
// digits. Extra digits are rendered first so the cut truncates.
func format(x *big.Float, digits uint32) string {
	s := x.Text('f', int(digits)+formatGuardDigits)

	return s[:int(digits)+2]
}
