// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/varta/vartad/blockchain/stake"
	"github.com/varta/vartad/chaincfg/chainhash"
	"github.com/varta/vartad/wire"
)

// stubChain is a minimal ChainView used across this package's tests. Only
// the methods a given test actually exercises need their maps populated;
// the rest return zero values, which is fine since CheckStakeTimeKernelHash
// and GetAverageStakeWeight never call GetTransaction or IndexByHash.
type stubChain struct {
	next          map[int64]*stake.BlockIndex
	difficulty    map[int64]float64
	difficultyHit int
}

func (s *stubChain) IndexByHash(chainhash.Hash) (*stake.BlockIndex, bool) { return nil, false }

func (s *stubChain) ActiveChainNext(b *stake.BlockIndex) *stake.BlockIndex {
	if s.next == nil {
		return nil
	}
	return s.next[b.Height]
}

func (s *stubChain) ReadFullBlock(*stake.BlockIndex) (*wire.MsgBlock, error) {
	return &wire.MsgBlock{}, nil
}

func (s *stubChain) GetTransaction(chainhash.Hash) (*wire.MsgTx, chainhash.Hash, uint32, error) {
	return nil, chainhash.Hash{}, 0, nil
}

func (s *stubChain) GetDifficulty(b *stake.BlockIndex) float64 {
	s.difficultyHit++
	if s.difficulty == nil {
		return 1
	}
	return s.difficulty[b.Height]
}

func (s *stubChain) AdjustedTime() int64 { return 0 }
