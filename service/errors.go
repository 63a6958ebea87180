package service

import "errors"

var (
	// ErrDigitsLimit is returned when a request exceeds Config.MaxDigits.
	ErrDigitsLimit = errors.New("service: digit count exceeds configured limit")

	// ErrUnavailable is returned when the caller stopped waiting, either for a
	// worker slot or for the result. It is joined with the context error.
	ErrUnavailable = errors.New("service: computation unavailable")
)
