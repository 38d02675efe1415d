package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ErrZeroOpen is returned when a change is requested against a zero opening price.
var ErrZeroOpen = errors.New("open price is zero")

// ErrNoValues is returned when averaging an empty set.
var ErrNoValues = errors.New("no values to average")

// Round2 converts a provider float into a decimal rounded to 2 places.
func Round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// ChangePercent returns (current - open) / open * 100 rounded to 2 places.
func ChangePercent(open, current decimal.Decimal) (decimal.Decimal, error) {
	if open.IsZero() {
		return decimal.Zero, ErrZeroOpen
	}
	return current.Sub(open).Div(open).Mul(hundred).Round(2), nil
}

// AveragePercent returns the unweighted mean of values rounded to 2 places.
func AveragePercent(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, ErrNoValues
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values)))).Round(2), nil
}
