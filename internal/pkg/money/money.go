// Package money holds monetary amounts as integer cents. Decimal values only
// appear at the edges: JSON, user input and display strings.
package money

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Cents is an amount in minor currency units
type Cents int64

// Zero is the zero amount
const Zero Cents = 0

// FromDecimal rounds d half away from zero to two places
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Round(2).Shift(2).IntPart())
}

// FromDecimalString parses "10", "10.5" or "10.499" (rounded to 10.50)
func FromDecimalString(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// FromFloat converts a float amount such as 3.5 into cents
func FromFloat(f float64) Cents {
	return FromDecimal(decimal.NewFromFloat(f))
}

// Decimal returns the amount in major units
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Mul multiplies a unit price by a quantity
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// Sum adds amounts
func Sum(amounts ...Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}
	return total
}

// String formats the amount with two decimals, e.g. "34.00"
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Format renders the amount in US dollars, e.g. "$1,234.50"
func (c Cents) Format() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := strconv.FormatInt(v/100, 10)
	var grouped []byte
	for i, r := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, r)
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped, v%100)
}

// MarshalJSON writes a bare decimal number such as 10.50
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string
func (c *Cents) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	v, err := FromDecimalString(string(data))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
