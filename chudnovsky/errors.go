package chudnovsky

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single failure class of the engine. It covers a
// zero digit count and digit counts whose working precision would overflow
// uint32. Match with errors.Is; the returned error carries call context.
var ErrInvalidArgument = errors.New("chudnovsky: invalid argument")

// Method names used to prefix wrapped errors.
const (
	MethodCompute = "Compute"
	MethodPlan    = "Plan"
)

// invalidf wraps ErrInvalidArgument as "<method>: <message>: chudnovsky: invalid argument".
func invalidf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
