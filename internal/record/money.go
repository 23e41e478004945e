package record

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Money is an amount in minor units (cents).
type Money int64

var hundred = decimal.NewFromInt(100)

// MoneyFromDecimal converts an exact decimal amount into cents.
// Amounts with sub-cent precision are rejected rather than rounded.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Mul(hundred)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("%s: %w", d.String(), ErrSubCentAmount)
	}

	return Money(cents.IntPart()), nil
}

// ParseMoney parses a human-entered amount into cents.
// Both "1,234.56" and "1.234,56" are accepted, as are a leading sign and a
// currency symbol. A lone separator followed by one or two digits is taken as
// the decimal separator; otherwise it is a thousands separator.
func ParseMoney(s string) (Money, error) {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-', r == '+':
			return r
		case r == ' ' || r == '\u00a0' || r == '$' || r == '€' || r == '£' || unicode.IsLetter(r):
			return -1
		}

		return r
	}, strings.TrimSpace(s))

	if clean == "" {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}

	clean = normalizeSeparators(strings.TrimPrefix(clean, "+"))

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}

	return MoneyFromDecimal(d)
}

func normalizeSeparators(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}

		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		return resolveLoneSeparator(s, ",")
	case lastDot >= 0:
		return resolveLoneSeparator(s, ".")
	}

	return s
}

func resolveLoneSeparator(s, sep string) string {
	if strings.Count(s, sep) == 1 {
		frac := len(s) - strings.Index(s, sep) - 1
		if frac == 1 || frac == 2 {
			return strings.Replace(s, sep, ".", 1)
		}
	}

	return strings.ReplaceAll(s, sep, "")
}

// Decimal returns the exact decimal value in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
