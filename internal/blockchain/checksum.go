// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/binary"

	"github.com/varta/vartad/blockchain/stake"
	"github.com/varta/vartad/chaincfg"
	"github.com/varta/vartad/chaincfg/chainhash"
	"github.com/varta/vartad/internal/uint256"
	"github.com/varta/vartad/wire"
)

// GetStakeModifierChecksum implements spec §4.10: a double-SHA256 digest
// chained through the previous block's checksum (absent only at genesis),
// truncated to its upper 32 bits.
func GetStakeModifierChecksum(b *stake.BlockIndex) uint32 {
	buf := make([]byte, 0, 4+4+chainhash.HashSize+8)
	if b.Prev != nil {
		buf = wire.AppendUint32LE(buf, b.Prev.StakeModifierChecksum)
	}
	buf = wire.AppendUint32LE(buf, uint32(b.Flags))
	buf = append(buf, b.HashProofOfStake[:]...)
	buf = wire.AppendUint64LE(buf, b.StakeModifier)

	digest := chainhash.DoubleHashH(buf)

	var u uint256.Uint256
	_ = u.SetBytesLE(digest[:])
	return binary.BigEndian.Uint32(u.BytesBE()[:4])
}

// CheckStakeModifierCheckpoints consults params' hard-coded
// height-to-expected-checksum table and reports true iff height is absent
// from it or checksum matches the recorded value (spec §4.10).
func CheckStakeModifierCheckpoints(height int64, checksum uint32, params *chaincfg.Params) bool {
	want, ok := params.StakeModifierCheckpoints[height]
	if !ok {
		return true
	}
	return want == checksum
}
