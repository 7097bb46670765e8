package portfolio

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// LookupCurrency returns the currency for an ISO code, or an error if the
// code is unknown.
func LookupCurrency(code string) (*money.Currency, error) {
	c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if c == nil {
		return nil, fmt.Errorf("unknown currency %q", code)
	}
	return c, nil
}

// MoneyFromDecimal converts a major-unit amount into minor units of the
// currency, rounding half away from zero.
func MoneyFromDecimal(amount decimal.Decimal, code string) (*money.Money, error) {
	cur, err := LookupCurrency(code)
	if err != nil {
		return nil, err
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(decimal.NewFromInt(1 << 53)) {
		return nil, fmt.Errorf("amount %s out of range", amount)
	}
	return money.New(minor.IntPart(), cur.Code), nil
}

// ParseMoney parses a major-unit amount such as "10.50" in currency code.
func ParseMoney(s, code string) (*money.Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return MoneyFromDecimal(d, code)
}

// DecimalString renders m as a plain major-unit amount ("10.50"), the form
// stored in the portfolio file.
func DecimalString(m *money.Money) string {
	frac := int32(m.Currency().Fraction)
	return decimal.New(m.Amount(), -frac).StringFixed(frac)
}
