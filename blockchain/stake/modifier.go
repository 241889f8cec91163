// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import "github.com/varta/vartad/chaincfg/chainhash"

// ComputeNextStakeModifier implements spec §4.4: given the block being
// added to the chain, it either emits a freshly generated 64-bit stake
// modifier or reports that the new block inherits its predecessor's.
//
// The candidate being added, c, is only used for its Prev pointer; c
// itself need not yet have a Hash or Time assigned, matching the
// reference's behavior of calling this before those fields are finalized.
func ComputeNextStakeModifier(c *BlockIndex, modifierInterval, modifierIntervalRatio, lastPoWBlock int64) (modifier uint64, generated bool, err error) {
	if c.Prev == nil {
		// Genesis.
		return 0, true, nil
	}

	prevModifier, prevModifierTime, err := nearestGeneratedModifier(c.Prev)
	if err != nil {
		return 0, false, err
	}

	if prevModifierTime/modifierInterval >= c.Prev.Time/modifierInterval {
		// No interval boundary crossed since the last generation.
		return prevModifier, false, nil
	}

	window := GetStakeModifierSelectionInterval(modifierInterval, modifierIntervalRatio)
	start := (c.Prev.Time/modifierInterval)*modifierInterval - window

	candidates, _ := BuildCandidateSet(c.Prev, start)

	var newModifier uint64
	selected := make(map[chainhash.Hash]struct{})
	stop := start

	rounds := NumSelectionRounds
	if len(candidates) < rounds {
		rounds = len(candidates)
	}

	for round := 0; round < rounds; round++ {
		stop += GetStakeModifierSelectionIntervalSection(round, modifierInterval, modifierIntervalRatio)

		winner, err := SelectBlockFromCandidates(candidates, selected, stop, prevModifier, lastPoWBlock)
		if err != nil {
			return 0, false, err
		}

		newModifier |= winner.StakeEntropyBit() << uint(round)
		selected[winner.Hash] = struct{}{}
	}

	log.Debugf("generated stake modifier %016x from %d candidates at height %d",
		newModifier, len(candidates), c.Height)
	return newModifier, true, nil
}

// nearestGeneratedModifier walks back through Prev pointers starting at
// from (inclusive) until it finds a block with GeneratedStakeModifier set,
// returning that block's modifier and time.
func nearestGeneratedModifier(from *BlockIndex) (modifier uint64, t int64, err error) {
	for b := from; b != nil; b = b.Prev {
		if b.GeneratedStakeModifier() {
			return b.StakeModifier, b.Time, nil
		}
	}
	return 0, 0, ruleError(ErrNoGeneratedAncestor,
		"no ancestor block has a generated stake modifier")
}

// ChainNexter is the narrow slice of the chain adapter (spec §6
// active_chain_next) GetKernelStakeModifier needs: given a block, return
// its successor on the currently active chain, or nil if none exists yet.
// Implementations other than the active chain's tip walker must never
// follow a side-chain fork here — reorgs mid-call invalidate the result
// (spec §5).
type ChainNexter interface {
	ActiveChainNext(*BlockIndex) *BlockIndex
}

// GetKernelStakeModifier implements spec §4.5: starting at the block
// confirming the UTXO being staked, it walks forward on the active chain
// until it reaches a point one full selection interval later, returning
// the stake modifier in force there along with the height and time of the
// block that most recently generated it.
//
// ok == false reports "not yet verifiable": the active chain has no
// successor before reaching the target time (the chain has not grown far
// enough past source); callers should treat that case as "retry once more
// blocks arrive" per spec §7, not as a consensus rejection.
func GetKernelStakeModifier(source *BlockIndex, chain ChainNexter, modifierInterval, modifierIntervalRatio int64) (modifier uint64, height int64, modTime int64, ok bool) {
	window := GetStakeModifierSelectionInterval(modifierInterval, modifierIntervalRatio)
	targetTime := source.Time + window

	pindex := source
	height, modTime = pindex.Height, pindex.Time

	for pindex.Time < targetTime {
		next := chain.ActiveChainNext(pindex)
		if next == nil {
			return 0, 0, 0, false
		}
		pindex = next
		if pindex.GeneratedStakeModifier() {
			height, modTime = pindex.Height, pindex.Time
		}
	}

	return pindex.StakeModifier, height, modTime, true
}
