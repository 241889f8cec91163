// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "github.com/varta/vartad/chaincfg/chainhash"

// OutPoint defines a data type that is used to track previous transaction
// outputs. It is the (hash, n) pair spec §3 calls the "Transaction view"'s
// prevout: the hash of the transaction holding the referenced output and the
// zero-based index of that output within it.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the provided
// hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}
