// Copyright (c) 2025 The Monetarium developers
// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cointype defines the atomic unit conventions for Varta's single
// native coin.  This is a single-coin model: the dual-coin (VAR/SKA)
// indirection this package is adapted from has no referent in a PPCoin-
// lineage chain, which reasons about exactly one asset's stake weight and
// kernel value, so it is dropped rather than carried unused.
package cointype

import "fmt"

// Amount represents a coin amount in atoms, the indivisible base unit used
// internally throughout the kernel.
type Amount int64

const (
	// AtomsPerCoin is the number of atomic units in one coin.  Spec §4.8
	// refers to this as COIN.
	AtomsPerCoin = 1e8

	// MaxAtoms is the maximum transaction amount allowed in atoms.
	MaxAtoms = 21e6 * AtomsPerCoin

	// MaxAmount is the maximum amount expressible as an Amount.
	MaxAmount = Amount(MaxAtoms)
)

// ToCoin returns the floating point value of the amount in whole coins.
func (a Amount) ToCoin() float64 {
	return float64(a) / AtomsPerCoin
}

// String returns the amount formatted as a coin value.
func (a Amount) String() string {
	return fmt.Sprintf("%.8f coin", a.ToCoin())
}

// IsWithinRange reports whether a is a sane, non-negative amount that does
// not exceed MaxAmount.
func (a Amount) IsWithinRange() bool {
	return a >= 0 && a <= MaxAmount
}
