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

// MainNetParams returns the network parameters for the main network.
func MainNetParams() *Params {
	// genesisBlock defines the genesis block of the block chain which
	// serves as the public transaction ledger for the main network.  It is
	// valid by definition; none of its fields are validated for
	// correctness.
	genesisBlock := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   1,
			PrevBlock: chainhash.Hash{},
			Timestamp: time.Unix(1760649600, 0), // Thu, 16 Oct 2025 21:20:00 GMT
			Bits:      0x1d00ffff,
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
				SignatureScript: []byte("varta genesis"),
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
		Name:        "mainnet",
		Net:         wire.MainNet,
		DefaultPort: "9108",

		GenesisBlock: &genesisBlock,
		GenesisHash:  genesisBlock.BlockHash(),

		// Consensus parameters for the proof-of-stake-time kernel.
		StakeMinAge:           60 * 60, // 1 hour
		ModifierInterval:      6 * 60 * 60, // 6 hours
		TargetSpacing:         60,      // 1 minute per block
		ModifierIntervalRatio: 3,
		LastPoWBlock:          20160, // ~2 weeks at 1 block/minute
		ForkHeight2:           0,

		MaxTxSize: 1 << 20, // 1 MiB

		// StakeModifierCheckpoints hardcodes the stake-modifier checksum
		// at genesis height per spec §4.10/§9. The reference value in
		// spec §9, 0x0fd11f4e7, is one hex digit wider than the 32-bit
		// checksum type; this is treated as the low 32 bits of that
		// literal (see DESIGN.md).
		StakeModifierCheckpoints: map[int64]uint32{
			0: 0xfd11f4e7,
		},
	}
}
