package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in integer centavos. All revenue math is exact integer
// arithmetic; conversion to a decimal amount happens only at the JSON and
// display boundaries.
type Money int64

func MoneyFromAmount(amount float64) Money {
	return Money(math.Round(amount * 100))
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Amount() float64 {
	return float64(m) / 100
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) IsNegative() bool {
	return m < 0
}

// DivRound divides by n rounding half away from zero to a whole cent.
// Returns 0 when n is 0.
func (m Money) DivRound(n int) Money {
	if n == 0 {
		return 0
	}
	half := int64(n) / 2
	if m < 0 {
		half = -half
	}
	return Money((int64(m) + half) / int64(n))
}

// FormatBRL renders the amount the way the shop prints it: "R$ 35,00".
func (m Money) FormatBRL() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, v/100, v%100)
}

// MarshalJSON emits a plain decimal amount ("35", "25.5", "10.99") so
// exported snapshots carry the same number shape the product always used.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Amount(), 'f', -1, 64)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	amount, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*m = MoneyFromAmount(amount)
	return nil
}
