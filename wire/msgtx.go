// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/varta/vartad/chaincfg/chainhash"
)

// TxVersion is the current latest supported transaction version.
const TxVersion int32 = 1

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// SerializeSize returns the number of bytes it would take to serialize ti.
func (ti *TxIn) SerializeSize() int {
	return chainhash.HashSize + 4 +
		VarIntSerializeSize(uint64(len(ti.SignatureScript))) +
		len(ti.SignatureScript) + 4
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize to.
func (to *TxOut) SerializeSize() int {
	return 8 + VarIntSerializeSize(uint64(len(to.PkScript))) + len(to.PkScript)
}

// MsgTx implements the PPCoin-lineage transaction wire message.  Unlike
// newer Bitcoin-family formats, it carries an explicit nTime field
// (Time) immediately after the version: the field spec §3 calls tx.time
// and §4.8 feeds directly into the stake-time weight calculation.
type MsgTx struct {
	Version  int32
	Time     uint32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new PPCoin-lineage transaction with default field
// values.
func NewMsgTx() *MsgTx {
	return &MsgTx{Version: TxVersion}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// Serialize encodes the transaction to w using the on-wire byte layout:
// version, time, inputs, outputs, lock time — each field little-endian,
// unpadded, exactly as spec §6 requires for everything that can end up
// inside a consensus hash.
func (msg *MsgTx) Serialize(w io.Writer) error {
	if err := writeElement(w, msg.Version); err != nil {
		return err
	}
	if err := writeElement(w, msg.Time); err != nil {
		return err
	}

	if err := WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeElement(w, ti.PreviousOutPoint.Hash[:]); err != nil {
			return err
		}
		if err := writeElement(w, ti.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := WriteVarInt(w, uint64(len(ti.SignatureScript))); err != nil {
			return err
		}
		if err := writeElement(w, ti.SignatureScript); err != nil {
			return err
		}
		if err := writeElement(w, ti.Sequence); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeElement(w, to.Value); err != nil {
			return err
		}
		if err := WriteVarInt(w, uint64(len(to.PkScript))); err != nil {
			return err
		}
		if err := writeElement(w, to.PkScript); err != nil {
			return err
		}
	}

	return writeElement(w, msg.LockTime)
}

// SerializeSize returns the number of bytes it would take to serialize msg.
func (msg *MsgTx) SerializeSize() int {
	n := 4 + 4 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut))) + 4
	for _, ti := range msg.TxIn {
		n += ti.SerializeSize()
	}
	for _, to := range msg.TxOut {
		n += to.SerializeSize()
	}
	return n
}

// TxHash computes the double-SHA256 hash of the serialized transaction,
// which is this chain's transaction identifier.
func (msg *MsgTx) TxHash() chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(msg.SerializeSize())
	_ = msg.Serialize(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// IsCoinStake reports whether msg has the shape of a coinstake transaction:
// at least one input, at least two outputs, and a first output that is
// empty (zero value, no script) (spec §3's
// is_coinstake predicate — normally supplied by the UTXO/mempool layer that
// classifies transactions, reproduced here so the kernel has something
// concrete to call in tests and in the absence of that external layer).
func (msg *MsgTx) IsCoinStake() bool {
	return len(msg.TxIn) >= 1 &&
		len(msg.TxOut) >= 2 &&
		len(msg.TxOut[0].PkScript) == 0 &&
		msg.TxOut[0].Value == 0
}
