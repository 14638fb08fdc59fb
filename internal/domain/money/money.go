package money

import (
	"fmt"
	"math"
)

// Money is an amount in hundredths of the hotel currency unit.
type Money struct {
	cents int64
}

func Zero() Money {
	return Money{}
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// FromFloat rounds to two decimals, half away from zero.
func FromFloat(v float64) Money {
	return Money{cents: int64(math.Round(v * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Float() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Mul(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent returns round(m * pct / 100, 2).
func (m Money) Percent(pct float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * pct / 100))}
}

func (m Money) IsZero() bool     { return m.cents == 0 }
func (m Money) IsPositive() bool { return m.cents > 0 }
func (m Money) IsNegative() bool { return m.cents < 0 }

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func Min(a, b Money) Money {
	if a.cents < b.cents {
		return a
	}
	return b
}

func Sum(ms ...Money) Money {
	var total int64
	for _, m := range ms {
		total += m.cents
	}
	return Money{cents: total}
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
