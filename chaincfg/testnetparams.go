// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/varta/vartad/chaincfg/chainhash"
	"github.com/varta/vartad/wire"
)

// TestNetParams returns the network parameters for the test network.
func TestNetParams() *Params {
	genesisBlock := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   1,
			PrevBlock: chainhash.Hash{},
			Timestamp: time.Unix(1760649600, 0),
			Bits:      0x1e0ffff0,
			Nonce:     0,
		},
		Transactions: []*wire.MsgTx{{
			Version: 1,
			Time:    1760649600,
			TxIn: []*wire.TxIn{{
				PreviousOutPoint: wire.OutPoint{
					Hash:  chainhash.Hash{},
					Index: 0xffffffff,
				},
				SignatureScript: []byte("varta testnet genesis"),
				Sequence:        0xffffffff,
			}},
			TxOut: []*wire.TxOut{{
				Value:    0,
				PkScript: []byte{},
			}},
			LockTime: 0,
		}},
	}
	genesisBlock.Header.MerkleRoot = genesisBlock.Transactions[0].TxHash()

	return &Params{
		Name:        "testnet",
		Net:         wire.TestNet,
		DefaultPort: "19108",

		GenesisBlock: &genesisBlock,
		GenesisHash:  genesisBlock.BlockHash(),

		// Testnet uses a much shorter stake minimum age and modifier
		// interval so stake eligibility and modifier rollover can be
		// exercised without waiting hours, the way dcrd-lineage testnets
		// shrink CoinbaseMaturity/TicketMaturity relative to mainnet.
		StakeMinAge:           60,  // 1 minute
		ModifierInterval:      600, // 10 minutes
		TargetSpacing:         10,  // 10 seconds per block
		ModifierIntervalRatio: 3,
		LastPoWBlock:          100,
		ForkHeight2:           0,

		MaxTxSize: 1 << 20,

		// Per spec §9, testnet's genesis checkpoint is 0.
		StakeModifierCheckpoints: map[int64]uint32{
			0: 0,
		},
	}
}
