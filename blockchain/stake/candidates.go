// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"sort"

	"github.com/varta/vartad/chaincfg/chainhash"
	"github.com/varta/vartad/internal/uint256"
	"github.com/varta/vartad/wire"
)

// Candidate is one entry in a modifier-generation candidate set: a block's
// timestamp paired with its hash interpreted as a 256-bit numeric value,
// the pairing spec §4.2 sorts on.
type Candidate struct {
	Time  int64
	Hash  uint256.Uint256
	Block *BlockIndex
}

// BuildCandidateSet walks back from anchor via Prev while a block's time is
// at least start, collecting one Candidate per visited block, then returns
// them stable-sorted by (time ascending, hash ascending) — the numeric,
// not lexicographic, ordering spec §4.2 and §9 insist on to avoid forking
// on chains with consecutive equal-timestamp blocks.
//
// firstCandidateHeight is the height of the earliest block eligible to
// enter a future candidate set immediately following this one: one past
// the first block the walk excluded, or 0 if the walk ran all the way back
// to genesis.
func BuildCandidateSet(anchor *BlockIndex, start int64) (candidates []Candidate, firstCandidateHeight int64) {
	var raw []Candidate
	block := anchor
	for block != nil && block.Time >= start {
		raw = append(raw, Candidate{
			Time:  block.Time,
			Hash:  block.HashAsBigInt(),
			Block: block,
		})
		block = block.Prev
	}
	if block != nil {
		firstCandidateHeight = block.Height + 1
	}

	// The walk visits newest-first; reverse so eldest is first before the
	// stable sort, matching the reference's insertion order.
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}

	sort.SliceStable(raw, func(i, j int) bool {
		if raw[i].Time != raw[j].Time {
			return raw[i].Time < raw[j].Time
		}
		return raw[i].Hash.Cmp(raw[j].Hash) < 0
	})

	return raw, firstCandidateHeight
}

// SelectBlockFromCandidates runs one round of the selection lottery (spec
// §4.3): it scans the sorted candidate vector for the block minimizing a
// selection hash seeded by the previous modifier, skipping blocks already
// selected in an earlier round and stopping early once a winner has been
// found and the vector moves past the round's cutoff timestamp.
//
// selected holds the hashes of blocks already chosen in prior rounds of
// the same generation; it is read-only here, the caller inserts the
// winner after each round.
func SelectBlockFromCandidates(
	candidates []Candidate,
	selected map[chainhash.Hash]struct{},
	stop int64,
	prevModifier uint64,
	lastPoWBlock int64,
) (*BlockIndex, error) {
	var best *BlockIndex
	var bestSelectionHash uint256.Uint256
	haveBest := false

	modifierLE := wire.AppendUint64LE(nil, prevModifier)

	for _, c := range candidates {
		if haveBest && c.Time > stop {
			break
		}
		if _, ok := selected[c.Block.Hash]; ok {
			continue
		}

		proof := c.Block.SelectionProof(lastPoWBlock)
		buf := make([]byte, 0, 32+8)
		buf = append(buf, proof.BytesLE()...)
		buf = append(buf, modifierLE...)
		digest := chainhash.DoubleHashH(buf)

		var selectionHash uint256.Uint256
		_ = selectionHash.SetBytesLE(digest[:])
		if c.Block.Height > lastPoWBlock {
			// Biases PoS candidates to win ties against PoW candidates:
			// the "energy-efficiency preservation" rule of spec §4.3.
			selectionHash.Rsh(32)
		}

		if !haveBest || selectionHash.Cmp(bestSelectionHash) < 0 {
			best = c.Block
			bestSelectionHash = selectionHash
			haveBest = true
		}
	}

	if !haveBest {
		return nil, errNoEligibleCandidate
	}
	return best, nil
}
