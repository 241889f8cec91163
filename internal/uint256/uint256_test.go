// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import (
	"math/big"
	"testing"
)

func TestCmpOrdering(t *testing.T) {
	var a, b Uint256
	a.SetBytesBE([]byte{0x00, 0x01})
	b.SetBytesBE([]byte{0x00, 0x02})

	if a.Cmp(b) >= 0 {
		t.Fatalf("expected a < b")
	}
	if b.Cmp(a) <= 0 {
		t.Fatalf("expected b > a")
	}
	if a.Cmp(a) != 0 {
		t.Fatalf("expected a == a")
	}
}

func TestRshInPlace256Bit(t *testing.T) {
	// A value with a bit set only in the top word must survive a 32-bit
	// right shift as a 256-bit operation -- a 64-bit truncation would lose
	// it entirely, which is exactly the bug spec §9 warns against.
	var u Uint256
	u.w[3] = 1 << 63

	u.Rsh(32)
	want := uint64(1) << 31
	if u.w[3] != want || u.w[2] != 0 || u.w[1] != 0 || u.w[0] != 0 {
		t.Fatalf("Rsh(32) = %+v, want w[3] = %#x and lower words zero", u.w, want)
	}
}

func TestLshRshRoundTrip(t *testing.T) {
	var u Uint256
	u.SetUint64(0x1234)
	u.Lsh(40)
	u.Rsh(40)
	if u.w[0] != 0x1234 {
		t.Fatalf("round trip mismatch: got %#x", u.w[0])
	}
}

func TestFromCompactMatchesBigInt(t *testing.T) {
	tests := []uint32{
		0x1d00ffff,
		0x1b0404cb,
		0x03123456, // exponent <= 3 branch
		0x01003456,
		0x00000000,
		0x00800000, // sign bit, mantissa zero
		0x05809234, // sign bit set with nonzero mantissa -> zero per spec note
	}

	for _, compact := range tests {
		got := FromCompact(compact | 0x00000000)
		want := compactToBigRef(compact)

		gotBig := new(big.Int).SetBytes(got.BytesBE())
		if compact&0x00800000 != 0 {
			want = big.NewInt(0)
		}
		if gotBig.Cmp(want) != 0 {
			t.Errorf("FromCompact(%#08x) = %s, want %s", compact, gotBig, want)
		}
	}
}

// compactToBigRef is the textbook CompactToBig used as an independent
// reference to check FromCompact against, ignoring the sign bit (checked
// separately by the caller).
func compactToBigRef(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	exponent := uint(compact >> 24)

	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}
	return bn
}

func TestMulMatchesBigInt(t *testing.T) {
	var a, b Uint256
	a.SetUint64(123456789)
	b.SetUint64(987654321)

	got := a.Mul(b)
	want := new(big.Int).Mul(big.NewInt(123456789), big.NewInt(987654321))

	gotBig := new(big.Int).SetBytes(got.BytesBE())
	if gotBig.Cmp(want) != 0 {
		t.Fatalf("Mul = %s, want %s", gotBig, want)
	}
}
