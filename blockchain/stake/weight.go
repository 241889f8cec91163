// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"math"

	"github.com/varta/vartad/cointype"
)

// GetDifficultyFunc resolves a block's proof-of-work/proof-of-stake
// difficulty as a floating point ratio. It stands in for the chain
// adapter's get_difficulty call (spec §6) — difficulty retargeting itself
// is explicitly out of this kernel's scope (spec §1 Non-goals), so
// GetPoSKernelPS takes the value as a dependency rather than computing it.
type GetDifficultyFunc func(*BlockIndex) float64

// GetPoSKernelPS computes a moving kernels-per-second estimate by walking
// back from block through up to 72 qualifying proof-of-stake blocks (spec
// §4.6). Each pair of consecutive PoS blocks contributes
// difficulty(newer)*2^32 to the numerator and the newer-minus-older time
// delta to the denominator; forkHeight2 controls whether that delta is
// floored at zero (the "prevent negative stake time" fix) or left signed,
// a pre-fix bug the reference preserves for blocks below the fork height.
func GetPoSKernelPS(block *BlockIndex, lastPoWBlock, forkHeight2 int64, getDifficulty GetDifficultyFunc) float64 {
	const posInterval = 72
	const twoPow32 = 4294967296.0

	var sumDifficulty float64
	var sumTime int64
	handled := 0

	var prevStake *BlockIndex
	for b := block; b != nil && handled < posInterval; b = b.Prev {
		if b.Height <= lastPoWBlock {
			continue
		}
		if prevStake != nil {
			sumDifficulty += getDifficulty(prevStake) * twoPow32

			delta := prevStake.Time - b.Time
			if b.Height >= forkHeight2 && delta < 0 {
				delta = 0
			}
			sumTime += delta
			handled++
		}
		prevStake = b
	}

	if sumTime == 0 {
		return 0
	}
	return sumDifficulty / float64(sumTime)
}

// GetStakeTimeFactoredWeight implements spec §4.7's cosine-squared damping
// of a candidate stake's effective time weight. fraction compares the
// stake's own coin-day weight (plus one, avoiding a zero-fraction
// singularity) against the network-wide rolling average; stakes large
// enough to exceed 45% of that average are collapsed to the floor value
// stakeMinAge+1, an anti-whale measure that removes any advantage from
// concentrating stake.
func GetStakeTimeFactoredWeight(timeWeight, coinDayWeight int64, avgStakeWeight float64, stakeMinAge int64) int64 {
	fraction := (float64(coinDayWeight) + 1) / avgStakeWeight
	if fraction > 0.45 {
		return stakeMinAge + 1
	}
	c := math.Cos(math.Pi * fraction)
	return int64(c * c * float64(timeWeight))
}

// GetCoinAge computes the coin-day value a single input contributes: value
// (in atoms) times the number of seconds it has been held, normalized to
// whole coins and whole days. The PPCoin reference carries this helper
// unused by the consensus surface spec.md narrows to (spec §9); it is kept
// here so reward-path code built on top of this kernel (get_stake_time,
// spec §6) has one shared formula instead of re-deriving it inline.
func GetCoinAge(value, timeHeld int64) float64 {
	if timeHeld <= 0 {
		return 0
	}
	return float64(value) * float64(timeHeld) / cointype.AtomsPerCoin / 86400
}
