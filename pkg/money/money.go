// Package money provides functionality for handling monetary values.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., centavos for BRL).
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - All arithmetic operations require matching currencies.
package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., centavos for BRL).
type Amount = int64

// IsValid checks if the currency code is valid
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// Currency represents a monetary unit with its standard decimal places
type Currency struct {
	Code     Code   // 3-letter ISO 4217 code (e.g., "BRL")
	Decimals int    // Number of decimal places (0-8)
	Symbol   string // Display symbol (e.g., "R$")
}

// IsValid checks if the currency is valid.
func (c Currency) IsValid() bool {
	if c.Decimals < 0 || c.Decimals > 8 {
		return false
	}
	return c.Code.IsValid()
}

// String returns the currency code as a string
func (c Currency) String() string { return string(c.Code) }

// BRLCurrency is the only currency the ledger books in.
var BRLCurrency = Currency{Code: BRL, Decimals: 2, Symbol: "R$"}

// DefaultCurrency is the default currency (BRL)
var DefaultCurrency = BRLCurrency

// Money represents a monetary value in a specific currency.
// Money is immutable; every operation returns a new value.
type Money struct {
	amount   Amount
	currency Currency
}

// Zero returns a zero amount in the given currency.
func Zero(c Currency) Money {
	return Money{currency: c}
}

// New creates a Money value from an amount already expressed in the smallest unit.
func New(amount Amount, c Currency) (Money, error) {
	if !c.IsValid() {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, c.Code)
	}
	return Money{amount: amount, currency: c}, nil
}

// Must is like New but panics on an invalid currency. Intended for constants and tests.
func Must(amount Amount, c Currency) Money {
	m, err := New(amount, c)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v, %v): %v", amount, c, err))
	}
	return m
}

// maxExponent bounds the decimal exponent Parse accepts in either direction.
// Rescaling past it allocates a power of ten of that size.
const maxExponent = 18

// Parse converts a human decimal string such as "100.50" into Money.
// A comma is accepted as the decimal separator. The amount must not have
// more decimal places than the currency allows.
func Parse(s string, c Currency) (Money, error) {
	if !c.IsValid() {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, c.Code)
	}
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsZero() {
		return Zero(c), nil
	}
	switch exp := d.Exponent(); {
	case exp > maxExponent:
		return Money{}, fmt.Errorf("%w: %q", ErrAmountExceedsMaxSafeInt, s)
	case exp < -maxExponent:
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if -d.Exponent() > int32(c.Decimals) && !d.Equal(d.Truncate(int32(c.Decimals))) {
		return Money{}, fmt.Errorf("%w: %q", ErrTooManyDecimals, s)
	}
	units := d.Shift(int32(c.Decimals))
	if units.GreaterThan(decimal.NewFromInt(math.MaxInt64)) ||
		units.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: units.IntPart(), currency: c}, nil
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount {
	return m.amount
}

// Decimal returns the amount in the main currency unit.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amount, -int32(m.currency.Decimals))
}

// Currency returns the currency of the Money value.
func (m Money) Currency() Currency {
	return m.currency
}

// IsSameCurrency reports whether both values share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency.Code == other.currency.Code
}

// Add returns the sum of two amounts.
// Invariants enforced:
//   - Currencies must match.
//   - The sum must not overflow int64.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	if (other.amount > 0 && m.amount > math.MaxInt64-other.amount) ||
		(other.amount < 0 && m.amount < math.MinInt64-other.amount) {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns the difference of two amounts.
// The result can be negative if the subtrahend is larger than the minuend.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	if (other.amount < 0 && m.amount > math.MaxInt64+other.amount) ||
		(other.amount > 0 && m.amount < math.MinInt64+other.amount) {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Equals checks amount and currency equality.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// GreaterThan checks if m is strictly greater than other.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, fmt.Errorf("%w: %s and %s", ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	return m.amount > other.amount, nil
}

// LessThan checks if m is strictly less than other.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, fmt.Errorf("%w: %s and %s", ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	return m.amount < other.amount, nil
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String returns a string representation such as "100.50 BRL".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Decimal().StringFixed(int32(m.currency.Decimals)), m.currency.Code)
}

// Format renders the amount with the currency symbol, e.g. "R$ 100.50".
func (m Money) Format() string {
	symbol := m.currency.Symbol
	if symbol == "" {
		symbol = string(m.currency.Code)
	}
	return fmt.Sprintf("%s %s", symbol, m.Decimal().StringFixed(int32(m.currency.Decimals)))
}
