package calculators

import (
	"errors"
	"math"
)

// ErrInvalidInput is returned for out-of-range values and non-positive denominators.
var ErrInvalidInput = errors.New("invalid input")

// IsPositiveFinite reports whether x is a real number above zero. NaN and ±Inf are not.
func IsPositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
