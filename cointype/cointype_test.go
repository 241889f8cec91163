// Copyright (c) 2025 The Monetarium developers
// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cointype

import (
	"testing"
)

func TestAmountToCoin(t *testing.T) {
	tests := []struct {
		amount   Amount
		expected float64
	}{
		{0, 0},
		{AtomsPerCoin, 1},
		{AtomsPerCoin / 2, 0.5},
		{MaxAmount, 21e6},
	}

	for _, test := range tests {
		if got := test.amount.ToCoin(); got != test.expected {
			t.Errorf("Amount(%d).ToCoin() = %v, expected %v",
				test.amount, got, test.expected)
		}
	}
}

func TestAmountIsWithinRange(t *testing.T) {
	tests := []struct {
		amount   Amount
		expected bool
	}{
		{0, true},
		{AtomsPerCoin, true},
		{MaxAmount, true},
		{-1, false},
		{MaxAmount + 1, false},
	}

	for _, test := range tests {
		if got := test.amount.IsWithinRange(); got != test.expected {
			t.Errorf("Amount(%d).IsWithinRange() = %t, expected %t",
				test.amount, got, test.expected)
		}
	}
}
