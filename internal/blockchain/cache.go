// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"

	"github.com/varta/vartad/blockchain/stake"
	"github.com/varta/vartad/chaincfg"
)

// AverageWeightCache is the single-slot, process-wide cache spec §4.6 and
// §5 call for: at most one (height, value) pair is ever held, it is
// read-mostly, and it must be safe to share across validation callers even
// though block acceptance is logically serialized per chain tip.
type AverageWeightCache struct {
	mu     sync.Mutex
	height int64
	value  float64
	valid  bool
}

// Invalidate clears the cached slot. Callers invoke this when a reorg
// rolls the active chain back past the cached height (spec §9).
func (c *AverageWeightCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

func (c *AverageWeightCache) get(height int64) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.height == height {
		return c.value, true
	}
	return 0, false
}

func (c *AverageWeightCache) set(height int64, value float64) {
	c.mu.Lock()
	c.height = height
	c.value = value
	c.valid = true
	c.mu.Unlock()
}

// GetAverageStakeWeight returns the rolling average stake weight as of P,
// the tip's predecessor (spec §4.6). It walks back at most 60 blocks from
// P accumulating stake.GetPoSKernelPS per block, then adds the fixed +21
// constant; the result is cached in cache keyed by P's height until a
// different height is requested.
func GetAverageStakeWeight(p *stake.BlockIndex, chain ChainView, params *chaincfg.Params, cache *AverageWeightCache) float64 {
	if p == nil || p.Height < 1 {
		return 0
	}
	if v, ok := cache.get(p.Height); ok {
		return v
	}

	getDifficulty := func(b *stake.BlockIndex) float64 { return chain.GetDifficulty(b) }

	var weightSum float64
	i := 0
	for b := p; b != nil && i < 60; b = b.Prev {
		weightSum += stake.GetPoSKernelPS(b, params.LastPoWBlock, params.ForkHeight2, getDifficulty)
		i++
	}

	var result float64
	if i > 0 {
		result = weightSum/float64(i) + 21
	} else {
		result = 21
	}
	cache.set(p.Height, result)
	return result
}
