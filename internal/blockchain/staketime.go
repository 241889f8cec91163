// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/varta/vartad/blockchain/stake"
	"github.com/varta/vartad/chaincfg"
	"github.com/varta/vartad/cointype"
	"github.com/varta/vartad/wire"
)

const maxStakeTimeWeightSeconds = 30 * 24 * 60 * 60

// PrevOutValueResolver resolves the spent amount and confirmation time of a
// transaction's previous output, the per-input UTXO lookup GetStakeTime
// needs from the external chain adapter.
type PrevOutValueResolver func(prevout wire.OutPoint) (value int64, confirmedTime uint32, err error)

// GetStakeTime implements spec §6's get_stake_time: the per-transaction
// stake-time used for reward accounting, summed over every input in
// coin-day units. Inputs younger than stake_min_age are ignored; the raw
// time weight is clamped to 30 days; a candidate timestamp preceding an
// input's confirmation time aborts the whole computation.
func GetStakeTime(
	tx *wire.MsgTx,
	prev *stake.BlockIndex,
	resolve PrevOutValueResolver,
	chain ChainView,
	params *chaincfg.Params,
	cache *AverageWeightCache,
) (uint64, error) {
	var total int64

	for _, txIn := range tx.TxIn {
		value, confirmedTime, err := resolve(txIn.PreviousOutPoint)
		if err != nil {
			return 0, err
		}
		if tx.Time < confirmedTime {
			return 0, ruleError(ErrTimestampViolation,
				"transaction timestamp precedes an input's confirmation timestamp")
		}

		timeWeight := int64(tx.Time) - int64(confirmedTime)
		if timeWeight < params.StakeMinAge {
			continue
		}
		if timeWeight > maxStakeTimeWeightSeconds {
			timeWeight = maxStakeTimeWeightSeconds
		}

		coinDayWeight := value * timeWeight / cointype.AtomsPerCoin / 86400
		avg := GetAverageStakeWeight(prev, chain, params, cache)
		factored := stake.GetStakeTimeFactoredWeight(timeWeight, coinDayWeight, avg, params.StakeMinAge)

		total += value * factored / cointype.AtomsPerCoin / 86400
	}

	if total < 0 {
		total = 0
	}
	return uint64(total), nil
}
