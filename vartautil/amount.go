// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vartautil provides coin-amount conversion and formatting helpers
// shared across the kernel, built on top of the atomic-unit conventions
// defined in cointype.
package vartautil

import (
	"errors"
	"math"
	"strconv"

	"github.com/varta/vartad/cointype"
)

// AmountUnit describes a method of converting an Amount to something
// other than the base unit of a coin.  The value of the AmountUnit
// is the exponent component of the decadic multiple to convert from
// an amount in coins to an amount counted in atomic units.
type AmountUnit int

// These constants define various units used when describing a coin
// monetary amount.
const (
	AmountMegaCoin  AmountUnit = 6
	AmountKiloCoin  AmountUnit = 3
	AmountCoin      AmountUnit = 0
	AmountMilliCoin AmountUnit = -3
	AmountMicroCoin AmountUnit = -6
	AmountAtom      AmountUnit = -8
)

// String returns the unit as a string.  For recognized units, the SI
// prefix is used, or "Atom" for the base unit.  For all unrecognized
// units, "1eN coin" is returned, where N is the AmountUnit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaCoin:
		return "Mcoin"
	case AmountKiloCoin:
		return "kcoin"
	case AmountCoin:
		return "coin"
	case AmountMilliCoin:
		return "mcoin"
	case AmountMicroCoin:
		return "μcoin"
	case AmountAtom:
		return "Atom"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " coin"
	}
}

// round converts a floating point number, which may or may not be
// representable as an integer, to the cointype.Amount integer type by
// rounding to the nearest integer.  This is performed by adding or
// subtracting 0.5 depending on the sign, and relying on integer truncation
// to round the value to the nearest Amount.
func round(f float64) cointype.Amount {
	if f < 0 {
		return cointype.Amount(f - 0.5)
	}
	return cointype.Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// some value in the currency.  NewAmount errors if f is NaN or +-Infinity,
// but does not check that the amount is within the total amount of coins
// producible as f may not refer to an amount at a single moment in time.
//
// NewAmount is specifically for converting coins to atoms (atomic units).
// For creating a new Amount with an int64 value which denotes a quantity of
// atoms, do a simple type conversion from type int64 to cointype.Amount.
func NewAmount(f float64) (cointype.Amount, error) {
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid coin amount")
	}
	return round(f * cointype.AtomsPerCoin), nil
}

// ToUnit converts a monetary amount counted in atoms to a floating point
// value representing an amount of coins in the given unit.
func ToUnit(a cointype.Amount, u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// Format formats a monetary amount counted in atoms as a string for a
// given unit.  The conversion will succeed for any unit, however, known
// units will be formatted with an appended label describing the units
// with SI notation, or "Atom" for the base unit.
func Format(a cointype.Amount, u AmountUnit) string {
	units := " " + u.String()
	return strconv.FormatFloat(ToUnit(a, u), 'f', -int(u+8), 64) + units
}

// MulF64 multiplies an Amount by a floating point value.  While this is not
// an operation the kernel itself performs, it is useful for services built
// on top of the chain, for example calculating a fee by multiplying by a
// percentage.
func MulF64(a cointype.Amount, f float64) cointype.Amount {
	return round(float64(a) * f)
}

// AmountSorter implements sort.Interface to allow a slice of Amounts to
// be sorted.
type AmountSorter []cointype.Amount

// Len returns the number of Amounts in the slice.  It is part of the
// sort.Interface implementation.
func (s AmountSorter) Len() int {
	return len(s)
}

// Swap swaps the Amounts at the passed indices.  It is part of the
// sort.Interface implementation.
func (s AmountSorter) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Less returns whether the Amount with index i should sort before the
// Amount with index j.  It is part of the sort.Interface
// implementation.
func (s AmountSorter) Less(i, j int) bool {
	return s[i] < s[j]
}
