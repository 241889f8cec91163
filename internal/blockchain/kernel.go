// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/varta/vartad/blockchain/stake"
	"github.com/varta/vartad/blockchain/standalone"
	"github.com/varta/vartad/chaincfg"
	"github.com/varta/vartad/chaincfg/chainhash"
	"github.com/varta/vartad/cointype"
	"github.com/varta/vartad/internal/uint256"
	"github.com/varta/vartad/wire"
)

// KernelResult carries the hash and target CheckStakeTimeKernelHash and
// CheckProofOfStake computed, returned as out-parameters alongside success
// or failure the way spec §4.8 and §4.9 specify.
type KernelResult struct {
	Hash   chainhash.Hash
	Target chainhash.Hash
}

// CheckStakeTimeKernelHash implements spec §4.8: it verifies a coinstake's
// kernel hash against a target scaled by the source UTXO's stake time, and
// returns the computed hash and target alongside the verdict.
//
// blockFrom is the block that confirmed the source UTXO; nTxOffset is the
// header-inclusive byte offset of txPrev within blockFrom (spec §9's
// "nTxOffset += 80" adjustment is the caller's responsibility, applied
// before this call). P is the tip's predecessor, used to resolve the
// rolling average stake weight.
func CheckStakeTimeKernelHash(
	nBits uint32,
	blockFrom *stake.BlockIndex,
	nTxOffset uint32,
	txPrev *wire.MsgTx,
	prevout wire.OutPoint,
	nTimeTx uint32,
	p *stake.BlockIndex,
	chain ChainView,
	params *chaincfg.Params,
	cache *AverageWeightCache,
) (result KernelResult, ok bool, err error) {
	if nTimeTx < txPrev.Time {
		return result, false, ruleError(ErrTimestampViolation,
			"coinstake timestamp precedes source transaction timestamp")
	}
	if blockFrom.Time+params.StakeMinAge > int64(nTimeTx) {
		return result, false, ruleError(ErrStakeAgeViolation,
			"source UTXO has not reached stake_min_age")
	}

	targetPerCoinDay := uint256.FromCompact(nBits)
	valueIn := txPrev.TxOut[prevout.Index].Value

	timeWeight := int64(nTimeTx) - int64(txPrev.Time) - params.StakeMinAge
	coinDayWeight := valueIn * timeWeight / cointype.AtomsPerCoin / 86400

	avg := GetAverageStakeWeight(p, chain, params, cache)
	factored := stake.GetStakeTimeFactoredWeight(timeWeight, coinDayWeight, avg, params.StakeMinAge)

	// stake_time_weight can be zero or negative (spec §9: GetWeight is not
	// clamped). A non-positive weight can never scale the target to a
	// non-zero value that stands a meaningful chance of being exceeded by
	// an honest hash, so it collapses to the zero target: every kernel
	// hash save the all-zero one then fails step 13, matching the
	// reference's big-integer semantics where a non-positive product
	// compares below any unsigned hash.
	var target uint256.Uint256
	stakeTimeWeight := valueIn * factored / cointype.AtomsPerCoin / 86400
	if stakeTimeWeight > 0 {
		target = targetPerCoinDay.MulUint64(uint64(stakeTimeWeight))
	}

	modifier, _, _, modOK := stake.GetKernelStakeModifier(blockFrom, chain, params.ModifierInterval, params.ModifierIntervalRatio)
	if !modOK {
		return result, false, ruleError(ErrModifierUnavailable,
			"stake modifier for source block is not yet verifiable")
	}

	buf := make([]byte, 0, 8+4+4+4+4+4)
	buf = wire.AppendUint64LE(buf, modifier)
	buf = wire.AppendUint32LE(buf, uint32(blockFrom.Time))
	buf = wire.AppendUint32LE(buf, nTxOffset)
	buf = wire.AppendUint32LE(buf, txPrev.Time)
	buf = wire.AppendUint32LE(buf, prevout.Index)
	buf = wire.AppendUint32LE(buf, nTimeTx)

	hash := chainhash.DoubleHashH(buf)

	var hashNum uint256.Uint256
	_ = hashNum.SetBytesLE(hash[:])

	result.Hash = hash
	_ = result.Target.SetBytes(target.BytesBE())

	if blockFrom.Height > params.LastPoWBlock && hashNum.Cmp(target) > 0 {
		return result, false, ruleError(ErrKernelHashTooHigh,
			"kernel hash exceeds stake-time-scaled target")
	}

	return result, true, nil
}

// TxPrevResolver resolves the source transaction, confirming block index
// entry, and in-block byte offset (not yet header-adjusted) for a
// coinstake's first prevout — the UTXO lookup spec §4.9 step 2 delegates
// to the external chain adapter.
type TxPrevResolver func(prevout wire.OutPoint) (txPrev *wire.MsgTx, blockFrom *stake.BlockIndex, offsetInBlock uint32, err error)

// CheckProofOfStake implements spec §4.9, the top-level entry point called
// on every incoming block. It requires tx to be shaped like a coinstake,
// resolves its source UTXO via resolve, confirms blockFrom is readable,
// and delegates the kernel check to CheckStakeTimeKernelHash with p (the
// tip's predecessor) supplying the rolling average stake weight.
func CheckProofOfStake(
	tx *wire.MsgTx,
	nBits uint32,
	p *stake.BlockIndex,
	resolve TxPrevResolver,
	chain ChainView,
	params *chaincfg.Params,
	cache *AverageWeightCache,
) (result KernelResult, ok bool, err error) {
	if err := standalone.CheckCoinstakeSanity(tx); err != nil {
		return result, false, ruleError(ErrNotCoinStake, err.Error())
	}

	prevout := tx.TxIn[0].PreviousOutPoint
	txPrev, blockFrom, offsetInBlock, err := resolve(prevout)
	if err != nil {
		return result, false, err
	}

	// Header-inclusive offset: the tx offset reported by the adapter is
	// relative to the transactions area, not the start of the block.
	nTxOffset := offsetInBlock + wire.HeaderSize

	if _, err := chain.ReadFullBlock(blockFrom); err != nil {
		return result, false, nil
	}

	return CheckStakeTimeKernelHash(nBits, blockFrom, nTxOffset, txPrev, prevout, tx.Time, p, chain, params, cache)
}
