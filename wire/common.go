// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// CurrencyNet represents which network a message belongs to.
type CurrencyNet uint32

// Constants used to indicate the message currency network.
const (
	// MainNet represents the main network.
	MainNet CurrencyNet = 0xa9d3feb4

	// TestNet represents the test network.
	TestNet CurrencyNet = 0x4b4f5254
)

// String returns the CurrencyNet in human-readable form.
func (n CurrencyNet) String() string {
	switch n {
	case MainNet:
		return "MainNet"
	case TestNet:
		return "TestNet"
	default:
		return "Unknown CurrencyNet"
	}
}
