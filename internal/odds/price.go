package odds

import (
	"errors"
	"math"
)

// ErrInvalidPrice is returned for an American price of zero.
var ErrInvalidPrice = errors.New("invalid american odds: cannot be 0")

// AmericanToDecimal converts an American price to decimal odds.
// +150 → 2.50, -150 → 1.67.
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, ErrInvalidPrice
	}
	if american > 0 {
		return float64(american)/100.0 + 1.0, nil
	}
	return 100.0/float64(-american) + 1.0, nil
}

// DecimalToAmerican converts decimal odds back to an American price.
func DecimalToAmerican(decimal float64) (int, error) {
	if decimal <= 1.0 {
		return 0, errors.New("invalid decimal odds: must be > 1.0")
	}
	if decimal >= 2.0 {
		return int(math.Round((decimal - 1.0) * 100.0)), nil
	}
	return int(math.Round(-100.0 / (decimal - 1.0))), nil
}

// ImpliedProbability is the break-even win probability for an American price.
func ImpliedProbability(american int) (float64, error) {
	decimal, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}
	return 1.0 / decimal, nil
}
