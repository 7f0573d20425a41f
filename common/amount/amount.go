// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package amount provides a fixed-point monetary value used for every
// balance in the ledger. Amounts are never represented as binary floating
// point internally; float and decimal-text conversions are provided only at
// the I/O boundary and are documented where they are lossy.
package amount

import (
	"fmt"
	"math"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"github.com/txledger/txledger/common"
)

// Scale is the number of minor units per whole currency unit: amounts carry
// four fractional digits.
const Scale = 10000

const (
	// ErrNegative is returned when a constructor is given a negative value.
	ErrNegative = common.ConstError("amount: negative value is not allowed")
	// ErrOutOfRange is returned when a value does not fit in the amount's
	// 64-bit scaled representation.
	ErrOutOfRange = common.ConstError("amount: value out of representable range")
	// ErrOverflow is returned by Add when the sum does not fit in the
	// amount's 64-bit scaled representation.
	ErrOverflow = common.ConstError("amount: overflow")
	// ErrUnderflow is returned by Sub when the minuend is smaller than the
	// subtrahend.
	ErrUnderflow = common.ConstError("amount: underflow")
)

// Amount is a non-negative fixed-point monetary value at a scale of 10⁻⁴.
// It is backed by a uint256.Int, a checked-arithmetic primitive, but is
// constrained to values that fit a 64-bit scaled integer, per the ledger's
// data model.
type Amount struct {
	internal uint256.Int
}

// Zero is the additive identity.
func Zero() Amount {
	return Amount{}
}

// Max is the largest representable amount.
func Max() Amount {
	return FromMinorUnits(math.MaxUint64)
}

// FromMinorUnits builds an Amount directly from an already-scaled integer
// (i.e. units of 10⁻⁴ of the currency). It never fails: every uint64 value
// fits by construction.
func FromMinorUnits(units uint64) Amount {
	return Amount{internal: *uint256.NewInt(units)}
}

// Parse parses a decimal string such as "12.3400" into an Amount. Negative
// values are rejected. Fractional digits beyond the fourth are truncated
// toward zero. This is the lossless counterpart to FromFloat64, used by the
// CSV ingestion adapter so that textual amounts never pass through binary
// floating point.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("amount: invalid decimal %q: %w", s, err)
	}
	if d.IsNegative() {
		return Amount{}, ErrNegative
	}
	scaled := d.Truncate(4).Shift(4)
	if !scaled.IsInteger() {
		return Amount{}, fmt.Errorf("amount: %q did not reduce to an integer after scaling", s)
	}
	big := scaled.BigInt()
	if !big.IsUint64() {
		return Amount{}, ErrOutOfRange
	}
	return FromMinorUnits(big.Uint64()), nil
}

// FromFloat64 constructs an Amount from a binary floating point value by
// multiplying by Scale and truncating toward zero. This conversion is
// documented as potentially lossy at the final decimal places; prefer Parse
// when the original text is available.
func FromFloat64(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("amount: %v is not a finite number", f)
	}
	if f < 0 {
		return Amount{}, ErrNegative
	}
	scaled := math.Trunc(f * Scale)
	if scaled >= math.MaxUint64 {
		return Amount{}, ErrOutOfRange
	}
	return FromMinorUnits(uint64(scaled)), nil
}

// ToFloat64 converts the amount to a binary floating point value. This
// conversion is documented as potentially lossy: values with more
// significant digits than a float64 mantissa can exactly represent will
// drift. Prefer String for egress.
func (a Amount) ToFloat64() float64 {
	return float64(a.internal.Uint64()) / Scale
}

// String renders the amount as a decimal with exactly four fractional
// digits, the form used by the CSV egress adapter.
func (a Amount) String() string {
	return decimal.NewFromBigInt(a.internal.ToBig(), -4).StringFixed(4)
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool {
	return a.internal.IsZero()
}

// Compare returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func Compare(a, b Amount) int {
	return a.internal.Cmp(&b.internal)
}

// Add returns a+b, or ErrOverflow if the sum does not fit in the amount's
// 64-bit scaled representation.
func Add(a, b Amount) (Amount, error) {
	var sum uint256.Int
	sum.Add(&a.internal, &b.internal)
	if !sum.IsUint64() {
		return Amount{}, ErrOverflow
	}
	return Amount{internal: sum}, nil
}

// Sub returns a-b, or ErrUnderflow if b is greater than a.
func Sub(a, b Amount) (Amount, error) {
	var diff uint256.Int
	_, underflow := diff.SubOverflow(&a.internal, &b.internal)
	if underflow {
		return Amount{}, ErrUnderflow
	}
	return Amount{internal: diff}, nil
}
