package powbench

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidExponent is returned by PowerChecked when the exponent is not a
// non-negative integer.
var ErrInvalidExponent = errors.New("exponent must be a non-negative integer")

// MaxLinearExponent is the largest exponent computed by repeated
// multiplication. Larger exponents are handed to math.Pow.
const MaxLinearExponent = 1 << 20

// Power returns base raised to exponent.
//
// The exponent must be a non-negative integer. Any other exponent (negative,
// fractional, NaN or infinite) yields NaN instead of an error:
//
//	Power(2, 3)   // 8
//	Power(2, 0)   // 1
//	Power(2, -1)  // NaN
//	Power(2, 1.5) // NaN
//
// Use IsInvalid to test the result, or PowerChecked for an error return.
func Power(base, exponent float64) float64 {
	if !ValidExponent(exponent) {
		return math.NaN()
	}

	if exponent > MaxLinearExponent {
		return math.Pow(base, exponent)
	}
	return multiply(base, int(exponent))
}

// PowerChecked is like Power but reports an invalid exponent as an error
// wrapping ErrInvalidExponent.
func PowerChecked(base, exponent float64) (float64, error) {
	if !ValidExponent(exponent) {
		return math.NaN(), fmt.Errorf("power(%g, %g): %w", base, exponent, ErrInvalidExponent)
	}
	return Power(base, exponent), nil
}

// ValidExponent reports whether exponent is a finite, non-negative integer.
// Negative zero counts as zero.
func ValidExponent(exponent float64) bool {
	if math.IsNaN(exponent) || math.IsInf(exponent, 0) {
		return false
	}
	return exponent >= 0 && exponent == math.Trunc(exponent)
}

// IsInvalid reports whether r is the invalid-result marker returned by Power.
func IsInvalid(r float64) bool {
	return math.IsNaN(r)
}

// multiply computes base^n as n successive multiplications.
func multiply(base float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= base
	}
	return result
}
