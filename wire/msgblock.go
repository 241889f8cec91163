// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/varta/vartad/chaincfg/chainhash"
)

// BlockVersion is the current latest supported block version.
const BlockVersion int32 = 1

// BlockHeader defines information about a block and is used in the bitcoin/
// PPCoin block (MsgBlock) message.
type BlockHeader struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  time.Time
	Bits       uint32
	Nonce      uint32
}

// Serialize encodes the header to w in the 80-byte on-wire layout; this is
// the HeaderSize spec §4.9 adds to a transaction's in-block byte offset
// (nTxOffset += 80) to account for the header prefixing every block's
// transaction area.
func (h *BlockHeader) Serialize(w io.Writer) error {
	if err := writeElement(w, h.Version); err != nil {
		return err
	}
	if err := writeElement(w, h.PrevBlock[:]); err != nil {
		return err
	}
	if err := writeElement(w, h.MerkleRoot[:]); err != nil {
		return err
	}
	if err := writeElement(w, uint32(h.Timestamp.Unix())); err != nil {
		return err
	}
	if err := writeElement(w, h.Bits); err != nil {
		return err
	}
	return writeElement(w, h.Nonce)
}

// HeaderSize is the number of bytes in a serialized block header.  Spec
// §4.9 calls this value out explicitly as the consensus-visible adjustment
// added to a transaction's offset within the transactions area to get its
// offset within the full on-disk block.
const HeaderSize = 4 + chainhash.HashSize*2 + 4 + 4 + 4

// BlockHash computes the double-SHA256 hash of the block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(HeaderSize)
	_ = h.Serialize(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// MsgBlock implements the block wire message.  Only the fields the
// consensus kernel needs to build or verify are modeled; merkle-tree
// construction, witness data, and anything related to wallet or relay
// concerns live outside this repository's scope.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// BlockHash computes the double-SHA256 hash of the block header.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// CoinStakeTx returns the block's coinstake transaction and true if one is
// present.  PoS blocks carry a coinstake as the second transaction in the
// block (index 1); PoW blocks have none.
func (msg *MsgBlock) CoinStakeTx() (*MsgTx, bool) {
	if len(msg.Transactions) < 2 {
		return nil, false
	}
	tx := msg.Transactions[1]
	if !tx.IsCoinStake() {
		return nil, false
	}
	return tx, true
}
