package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

// PHP is the only currency the billing engine handles.
const PHP Currency = "PHP"

// CurrencyPlaces is the number of decimal places money is persisted with.
const CurrencyPlaces int32 = 2

// CurrencyEpsilon is the tolerance used when deciding whether a bill is settled.
var CurrencyEpsilon = decimal.New(1, -CurrencyPlaces)

// RoundCurrency rounds half away from zero to centavos.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// HasAtMostCents reports whether d carries no precision beyond centavos.
func HasAtMostCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(CurrencyPlaces))
}

// IsNegligible reports whether |d| is within the currency epsilon.
func IsNegligible(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(CurrencyEpsilon)
}

// ClampZero returns d, or zero when d is negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Sum adds the given amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// ParseAmount parses a decimal string such as "1250.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string: %w", err)
	}
	return d, nil
}

// FormatPeso renders an amount for statements, e.g. "PHP 1,250.50".
func FormatPeso(d decimal.Decimal) string {
	s := RoundCurrency(d).StringFixed(CurrencyPlaces)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	out := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i := range len(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	if neg {
		return fmt.Sprintf("%s -%s%s", PHP, out, frac)
	}
	return fmt.Sprintf("%s %s%s", PHP, out, frac)
}
