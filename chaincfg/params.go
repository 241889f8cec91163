// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the per-network consensus parameters the
// proof-of-stake-time kernel is configured with: the values spec §3
// calls out as immutable inputs (stake minimum age, modifier interval,
// target spacing, and so on), plus the genesis block and the hardcoded
// stake-modifier checkpoints of spec §4.10.
package chaincfg

import (
	"time"

	"github.com/varta/vartad/chaincfg/chainhash"
	"github.com/varta/vartad/wire"
)

// Params defines a network by its genesis block and the consensus
// parameters the stake-time kernel needs to evaluate candidate coinstake
// transactions and stake modifiers on that network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.CurrencyNet

	// DefaultPort defines the default peer-to-peer port for the network.
	// The kernel never dials it itself; it is carried here only because
	// every other teacher network-parameter struct does, for the benefit
	// of whatever P2P layer is eventually wired on top.
	DefaultPort string

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the hash of the genesis block, cached so it does not
	// need to be recomputed (and double-SHA256'd) on every lookup.
	GenesisHash chainhash.Hash

	// StakeMinAge is the minimum age, in seconds, a UTXO must reach before
	// it is eligible to stake (spec §3 stake_min_age).
	StakeMinAge int64

	// ModifierInterval is the alignment period, in seconds, between
	// successive stake-modifier generations (spec §3 modifier_interval).
	ModifierInterval int64

	// TargetSpacing is the expected number of seconds per block (spec §3
	// target_spacing).
	TargetSpacing int64

	// ModifierIntervalRatio shapes the geometric section lengths of the
	// selection interval (spec §4.1; reference value 3).
	ModifierIntervalRatio int64

	// LastPoWBlock is the height at or below which blocks are
	// proof-of-work; blocks above it are proof-of-stake (spec §3
	// last_pow_block).
	LastPoWBlock int64

	// ForkHeight2 is the height at which the "prevent negative stake
	// time" bug-fix branch of GetPoSKernelPS (spec §4.6) activates.
	ForkHeight2 int64

	// MaxTxSize is the maximum number of bytes a serialized transaction is
	// allowed to occupy (consumed by CheckTransactionSanity).
	MaxTxSize uint64

	// StakeModifierCheckpoints maps a block height to the expected
	// stake-modifier checksum at that height (spec §4.10). An absent
	// height is treated as unchecked.
	StakeModifierCheckpoints map[int64]uint32
}

// TargetTimePerBlock is a convenience time.Duration view of TargetSpacing.
func (p *Params) TargetTimePerBlock() time.Duration {
	return time.Duration(p.TargetSpacing) * time.Second
}
