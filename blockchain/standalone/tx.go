// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package standalone provides context-free consensus checks on
// transactions, including the coinstake shape check: the validation that
// needs nothing beyond the transaction itself. Kernel-hash checks live
// elsewhere.
package standalone

import (
	"fmt"
	"math"

	"github.com/varta/vartad/chaincfg/chainhash"
	"github.com/varta/vartad/cointype"
	"github.com/varta/vartad/wire"
)

const (
	// atomsPerCoin is the number of atoms in one coin.
	atomsPerCoin = cointype.AtomsPerCoin

	// maxAtoms is the maximum transaction amount allowed in atoms.
	maxAtoms = cointype.MaxAtoms
)

// zeroHash is the zero value for a chainhash.Hash and is defined as a
// package level variable to avoid the need to create a new instance every
// time a check is needed.
var zeroHash = chainhash.Hash{}

// IsCoinBaseTx determines whether or not a transaction is a coinbase.  A
// coinbase is a special transaction created by a miner (for proof-of-work
// blocks) that has no real inputs.  This is represented in the block chain
// by a transaction with a single input whose previous output index is set
// to the maximum value along with a zero hash.
func IsCoinBaseTx(tx *wire.MsgTx) bool {
	// A coinbase must only have one transaction input.
	if len(tx.TxIn) != 1 {
		return false
	}

	// The previous output of a coinbase must have a max value index and a
	// zero hash.
	prevOut := &tx.TxIn[0].PreviousOutPoint
	return prevOut.Index == math.MaxUint32 && prevOut.Hash == zeroHash
}

// isNullOutpoint determines whether or not a transaction's first previous
// output point is unset, as required of a coinbase input and forbidden for a
// coinstake's first input.
func isNullOutpoint(tx *wire.MsgTx) bool {
	nullInOP := tx.TxIn[0].PreviousOutPoint
	return nullInOP.Index == math.MaxUint32 && nullInOP.Hash.IsEqual(&zeroHash)
}

// CheckTransactionSanity performs some preliminary checks on a transaction to
// ensure it is sane.  These checks are context free.
func CheckTransactionSanity(tx *wire.MsgTx, maxTxSize uint64) error {
	// A transaction must have at least one input.
	if len(tx.TxIn) == 0 {
		return ruleError(ErrNoTxInputs, "transaction has no inputs")
	}

	// A transaction must have at least one output.
	if len(tx.TxOut) == 0 {
		return ruleError(ErrNoTxOutputs, "transaction has no outputs")
	}

	// A transaction must not exceed the maximum allowed size when serialized.
	serializedTxSize := uint64(tx.SerializeSize())
	if serializedTxSize > maxTxSize {
		str := fmt.Sprintf("serialized transaction is too big - got %d, max %d",
			serializedTxSize, maxTxSize)
		return ruleError(ErrTxTooBig, str)
	}

	// Ensure the transaction amounts are in range.  Each transaction output
	// must not be negative or more than the max allowed per transaction.
	// Also, the total of all outputs must abide by the same restrictions.
	// All amounts in a transaction are in a unit value known as an atom.
	// One coin is a quantity of atoms as defined by the AtomsPerCoin
	// constant. A coinstake's zero-value marker output (spec §3's
	// is_coinstake first output) is explicitly exempt since it carries no
	// value of its own.
	var totalAtoms int64
	isCoinstake := tx.IsCoinStake()
	for i, txOut := range tx.TxOut {
		atoms := txOut.Value
		if isCoinstake && i == 0 && atoms == 0 {
			continue
		}

		if atoms < 0 {
			str := fmt.Sprintf("transaction output has negative value of %v",
				atoms)
			return ruleError(ErrBadTxOutValue, str)
		}
		if atoms > maxAtoms {
			str := fmt.Sprintf("transaction output value of %v is higher than "+
				"max allowed value of %v", atoms, maxAtoms)
			return ruleError(ErrBadTxOutValue, str)
		}

		// Two's complement int64 overflow guarantees that any overflow is
		// detected and reported.
		totalAtoms += atoms
		if totalAtoms < 0 {
			str := fmt.Sprintf("total value of all transaction outputs "+
				"exceeds max allowed value of %v", maxAtoms)
			return ruleError(ErrBadTxOutValue, str)
		}
		if totalAtoms > maxAtoms {
			str := fmt.Sprintf("total value of all transaction outputs is %v "+
				"which is higher than max allowed value of %v", totalAtoms,
				maxAtoms)
			return ruleError(ErrBadTxOutValue, str)
		}
	}

	// Check for duplicate transaction inputs.
	existingTxOut := make(map[wire.OutPoint]struct{})
	for _, txIn := range tx.TxIn {
		if _, exists := existingTxOut[txIn.PreviousOutPoint]; exists {
			str := "transaction contains duplicate inputs"
			return ruleError(ErrDuplicateTxInputs, str)
		}
		existingTxOut[txIn.PreviousOutPoint] = struct{}{}
	}

	return nil
}

// CheckCoinstakeSanity performs the context-free portion of spec §3's
// is_coinstake shape check: a coinstake's first input must reference the
// real, spendable UTXO being staked (tx.inputs[0].prevout = (hash, n) in
// spec §3), the opposite of a coinbase's null outpoint, since the kernel
// check resolves that exact field to the source transaction and value the
// kernel hash is computed over.
func CheckCoinstakeSanity(tx *wire.MsgTx) error {
	if !tx.IsCoinStake() {
		return ruleError(ErrBadCoinstakeShape,
			"transaction does not have the shape of a coinstake")
	}
	if isNullOutpoint(tx) {
		return ruleError(ErrBadCoinstakeOutpoint,
			"coinstake transaction's first input must reference a real "+
				"previous outpoint")
	}
	return nil
}
