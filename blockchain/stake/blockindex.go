// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stake implements the pseudo-random block-selection lottery that
// produces the proof-of-stake-time kernel's stake modifier, along with the
// stake-time weighting function that scales a coinstake's kernel target.
// It is grounded on the teacher's stake package, replacing its
// ticket-voting logic (SSFee, tickets, revocations — no analog in this
// design) with the PPCoin-lineage modifier lottery.
package stake

import (
	"github.com/varta/vartad/chaincfg/chainhash"
	"github.com/varta/vartad/internal/uint256"
)

// BlockFlags is a bitmask of single-bit per-block facts the stake-modifier
// machinery needs: whether this block generated a new modifier, and the
// entropy bit it contributed when it was a selection candidate.
type BlockFlags uint32

// Flag bits for BlockFlags.
const (
	// BFGeneratedStakeModifier is set when this block's stake_modifier
	// field holds a freshly generated value rather than an inherited one
	// (spec §4.11).
	BFGeneratedStakeModifier BlockFlags = 1 << iota

	// BFStakeEntropyBit records the single entropy bit this block
	// contributes when it is selected as a round winner (spec §4.4 step 6).
	BFStakeEntropyBit
)

// BlockIndex is the logical per-block record the stake-modifier and
// kernel-check machinery operates over (spec §3's BlockIndex). Storage and
// persistence live entirely outside this package; BlockIndex only models
// the fields and back-pointer the algorithms read.
type BlockIndex struct {
	Hash   chainhash.Hash
	Height int64
	Time   int64
	Bits   uint32

	// Prev is the back-reference to the predecessor block, nil at genesis.
	Prev *BlockIndex

	Flags                 BlockFlags
	StakeModifier         uint64
	HashProofOfStake      chainhash.Hash
	StakeModifierChecksum uint32
}

// GeneratedStakeModifier reports whether this block's StakeModifier field
// holds a value it generated itself, as opposed to one inherited from an
// ancestor.
func (b *BlockIndex) GeneratedStakeModifier() bool {
	return b.Flags&BFGeneratedStakeModifier != 0
}

// StakeEntropyBit returns the single entropy bit recorded for this block
// (0 or 1).
func (b *BlockIndex) StakeEntropyBit() uint64 {
	if b.Flags&BFStakeEntropyBit != 0 {
		return 1
	}
	return 0
}

// HashAsBigInt interprets the block's own hash as a 256-bit numeric value.
// This is the tiebreaker spec §4.2 requires when sorting candidates with
// identical timestamps: numeric comparison of the raw hash bytes, never
// lexicographic or string comparison.
func (b *BlockIndex) HashAsBigInt() uint256.Uint256 {
	var u uint256.Uint256
	// The error return is unreachable: chainhash.Hash is always exactly
	// uint256's 32-byte width.
	_ = u.SetBytesLE(b.Hash[:])
	return u
}

// SelectionProof returns the 256-bit value used as this block's proof
// during candidate selection (spec §4.3): HashProofOfStake for
// proof-of-stake blocks (height above lastPoWBlock), or the block's own
// hash for proof-of-work blocks. PoW blocks never have a meaningful
// HashProofOfStake, so the selection and kernel paths must never read it
// for them (spec §8's quantified invariant).
func (b *BlockIndex) SelectionProof(lastPoWBlock int64) uint256.Uint256 {
	var u uint256.Uint256
	if b.Height > lastPoWBlock {
		_ = u.SetBytesLE(b.HashProofOfStake[:])
	} else {
		_ = u.SetBytesLE(b.Hash[:])
	}
	return u
}
