// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain wires the proof-of-stake-time kernel's primitives —
// the selection lottery and stake-time weighting of package stake — into
// the top-level checks a validator calls on every incoming block: the
// rolling average stake weight cache, the coinstake kernel check, and the
// stake-modifier checksum/checkpoint machinery. It consumes the block
// index, chain, and transaction lookups of an external chain adapter
// rather than owning any storage itself, per spec §1's external
// collaborators list.
package blockchain

import (
	"github.com/varta/vartad/blockchain/stake"
	"github.com/varta/vartad/chaincfg/chainhash"
	"github.com/varta/vartad/wire"
)

// ChainView is the external chain adapter contract this package consumes
// (spec §6). A validator's block index, UTXO set, and on-disk block store
// all live behind this interface; the kernel never touches them directly.
type ChainView interface {
	// IndexByHash looks a block index entry up by its hash.
	IndexByHash(hash chainhash.Hash) (*stake.BlockIndex, bool)

	// ActiveChainNext returns the successor of b on the currently active
	// chain, or nil if b is the tip (or not on the active chain).
	ActiveChainNext(b *stake.BlockIndex) *stake.BlockIndex

	// ReadFullBlock reads the full block body for b from storage.
	ReadFullBlock(b *stake.BlockIndex) (*wire.MsgBlock, error)

	// GetTransaction resolves a transaction by hash, along with the hash
	// of the block containing it and the transaction's byte offset within
	// that block's transactions area (not including the block header).
	GetTransaction(txHash chainhash.Hash) (tx *wire.MsgTx, blockHash chainhash.Hash, offsetInBlock uint32, err error)

	// GetDifficulty returns the difficulty ratio for b's compact target.
	GetDifficulty(b *stake.BlockIndex) float64

	// AdjustedTime returns the node's network-adjusted current time.
	AdjustedTime() int64
}
