package model

import (
	"github.com/shopspring/decimal"
)

// Money is a decimal amount that serializes as a bare JSON number,
// the way the backend emits and expects totals.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}

// String renders with two fraction digits.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
