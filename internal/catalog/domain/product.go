package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in minor units (cents).
type Money struct {
	Currency string
	Amount   int64
}

// Mul scales the amount by a quantity.
func (m Money) Mul(qty int) Money {
	return Money{Currency: m.Currency, Amount: m.Amount * int64(qty)}
}

// String renders the amount with two decimals, e.g. "10.00".
func (m Money) String() string {
	return FormatAmount(m.Amount)
}

// FormatAmount renders minor units with two decimals.
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

var ErrBadAmount = errors.New("malformed amount")

// ParseAmount parses decimal text like "10", "10.5" or "10.50" into minor
// units without going through a float.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}

	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}

	var cents int64
	switch len(frac) {
	case 0:
	case 1, 2:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || d < 0 {
			return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
		}
		cents = d
		if len(frac) == 1 {
			cents *= 10
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}

	return units*100 + cents, nil
}

type Product struct {
	ID       int
	Name     string
	Category string
	Price    Money
	Stock    int
}
