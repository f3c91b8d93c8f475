// Package types provides common types used across Vesting.
package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// Arithmetic sentinel errors. The accounting core treats any of these as
// fatal for the enclosing operation: amounts are never saturated or wrapped.
var (
	ErrAmountOverflow  = errors.New("types: amount overflow")
	ErrAmountUnderflow = errors.New("types: amount underflow")
	ErrDivisionByZero  = errors.New("types: division by zero")
)

// Amount is an unsigned 256-bit asset quantity in the asset's smallest unit.
// All arithmetic is integer-only and checked — operations that would wrap
// return an error instead of a corrupted value.
//
// The zero value is a valid zero amount.
type Amount struct {
	v uint256.Int
}

// NewAmount creates an Amount from a uint64 quantity.
func NewAmount(u uint64) Amount {
	var a Amount
	a.v.SetUint64(u)
	return a
}

// ParseAmount parses a base-10 string into an Amount.
func ParseAmount(s string) (Amount, error) {
	var a Amount
	if err := a.v.SetFromDecimal(s); err != nil {
		return Amount{}, fmt.Errorf("types: parse amount %q: %w", s, err)
	}
	return a, nil
}

// MustAmount is like ParseAmount but panics on error. Use for literals.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ZeroAmount returns the zero Amount.
func ZeroAmount() Amount { return Amount{} }

// Add returns a + other, or ErrAmountOverflow if the sum does not fit.
func (a Amount) Add(other Amount) (Amount, error) {
	var out Amount
	if _, overflow := out.v.AddOverflow(&a.v, &other.v); overflow {
		return Amount{}, ErrAmountOverflow
	}
	return out, nil
}

// Sub returns a - other, or ErrAmountUnderflow if other exceeds a.
func (a Amount) Sub(other Amount) (Amount, error) {
	var out Amount
	if _, underflow := out.v.SubOverflow(&a.v, &other.v); underflow {
		return Amount{}, ErrAmountUnderflow
	}
	return out, nil
}

// MulDiv returns a * num / den with floor division and a 512-bit
// intermediate product. Returns ErrDivisionByZero when den is zero and
// ErrAmountOverflow when the quotient does not fit in 256 bits.
func (a Amount) MulDiv(num, den uint64) (Amount, error) {
	if den == 0 {
		return Amount{}, ErrDivisionByZero
	}
	var out Amount
	n := uint256.NewInt(num)
	d := uint256.NewInt(den)
	if _, overflow := out.v.MulDivOverflow(&a.v, n, d); overflow {
		return Amount{}, ErrAmountOverflow
	}
	return out, nil
}

// Cmp compares a and other: -1 if a < other, 0 if equal, +1 if a > other.
func (a Amount) Cmp(other Amount) int { return a.v.Cmp(&other.v) }

// Equal reports whether a and other are the same quantity.
func (a Amount) Equal(other Amount) bool { return a.v.Eq(&other.v) }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.v.IsZero() }

// Uint64 returns the amount as a uint64 and whether it fits.
func (a Amount) Uint64() (uint64, bool) {
	if !a.v.IsUint64() {
		return 0, false
	}
	return a.v.Uint64(), true
}

// String returns the base-10 representation.
func (a Amount) String() string { return a.v.Dec() }

// Min returns the smaller of a and other.
func (a Amount) Min(other Amount) Amount {
	if a.Cmp(other) <= 0 {
		return a
	}
	return other
}

// Sum adds a slice of Amounts with overflow checking.
func Sum(amounts []Amount) (Amount, error) {
	total := ZeroAmount()
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return Amount{}, err
		}
	}
	return total, nil
}

// MarshalJSON encodes the amount as a base-10 JSON string so that values
// above 2^53 survive consumers that parse numbers as float64.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.v.Dec())
}

// UnmarshalJSON decodes either a JSON string or a JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Accept bare numbers for hand-written fixtures.
		var u uint64
		if nerr := json.Unmarshal(data, &u); nerr != nil {
			return fmt.Errorf("types: unmarshal amount: %w", err)
		}
		a.v.SetUint64(u)
		return nil
	}
	if err := a.v.SetFromDecimal(s); err != nil {
		return fmt.Errorf("types: unmarshal amount %q: %w", s, err)
	}
	return nil
}

// IsArithmeticError reports whether err is one of the checked-arithmetic
// sentinels.
func IsArithmeticError(err error) bool {
	return errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrAmountUnderflow) ||
		errors.Is(err, ErrDivisionByZero)
}
