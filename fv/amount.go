package fv

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode is the platform currency registered with go-money.
const CurrencyCode = "FVT"

// Fraction is the number of decimal places in the platform currency:
// one display unit equals 10^8 base units.
const Fraction = 8

var scale = decimal.New(1, Fraction)

func init() {
	money.AddCurrency(CurrencyCode, "FVT", "1 $", ".", ",", Fraction)
}

// ToBaseUnits converts a decimal amount string to integer base units.
// Fractional remainders below the smallest base unit are truncated,
// never rounded up. The input must already be a valid decimal string.
func ToBaseUnits(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", amount, err)
	}

	return d.Mul(scale).Truncate(0).IntPart(), nil
}

// FromBaseUnits converts integer base units back to a decimal string
// with the full eight fractional digits.
func FromBaseUnits(baseUnits int64) string {
	return decimal.New(baseUnits, -Fraction).StringFixed(Fraction)
}

// Money wraps base units in a go-money value in the platform currency.
func Money(baseUnits int64) *money.Money {
	return money.New(baseUnits, CurrencyCode)
}

// DisplayAmount formats base units for presentation.
func DisplayAmount(baseUnits int64) string {
	return Money(baseUnits).Display()
}
