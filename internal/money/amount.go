package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal money value. It encodes to JSON as a bare number so the
// API sees the same shape it would for a float, without float arithmetic on
// our side.
type Amount struct {
	decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{decimal.Zero}

// New returns a whole-unit amount.
func New(v int64) Amount {
	return Amount{decimal.NewFromInt(v)}
}

// FromFloat converts a float, e.g. from a command line flag.
func FromFloat(v float64) Amount {
	return Amount{decimal.NewFromFloat(v)}
}

// Parse reads a user supplied amount. NaN, infinities and anything that is
// not a plain decimal are rejected.
func Parse(raw string) (Amount, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Zero, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return Amount{d}, nil
}

func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

func (a Amount) LessThan(b Amount) bool {
	return a.Decimal.LessThan(b.Decimal)
}

func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both numbers and quoted numbers.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.UnmarshalJSON(b)
}
