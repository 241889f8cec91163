// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/varta/vartad/chaincfg/chainhash"
)

func TestMsgTxSerializeSizeMatchesSerialize(t *testing.T) {
	tx := NewMsgTx()
	tx.Time = 1700000000
	tx.AddTxIn(&TxIn{
		PreviousOutPoint: *NewOutPoint(&chainhash.Hash{}, 0xffffffff),
		SignatureScript:  []byte{0x01, 0x02, 0x03},
		Sequence:         0xffffffff,
	})
	tx.AddTxOut(&TxOut{Value: 5000000, PkScript: []byte{0x76, 0xa9, 0x14}})

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if got, want := buf.Len(), tx.SerializeSize(); got != want {
		t.Fatalf("SerializeSize mismatch: serialized %d bytes, SerializeSize reported %d\n%s",
			got, want, spew.Sdump(tx))
	}
}

func TestIsCoinStake(t *testing.T) {
	tests := []struct {
		name string
		tx   *MsgTx
		want bool
	}{
		{
			name: "coinstake shape",
			tx: &MsgTx{
				TxIn: []*TxIn{{}},
				TxOut: []*TxOut{
					{Value: 0, PkScript: nil},
					{Value: 100, PkScript: []byte{0x01}},
				},
			},
			want: true,
		},
		{
			name: "ordinary transaction",
			tx: &MsgTx{
				TxIn: []*TxIn{{}},
				TxOut: []*TxOut{
					{Value: 100, PkScript: []byte{0x01}},
				},
			},
			want: false,
		},
		{
			name: "empty first output but only one output",
			tx: &MsgTx{
				TxIn:  []*TxIn{{}},
				TxOut: []*TxOut{{Value: 0, PkScript: nil}},
			},
			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.tx.IsCoinStake(); got != test.want {
				t.Errorf("IsCoinStake() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestTxHashDeterministic(t *testing.T) {
	tx1 := NewMsgTx()
	tx1.Time = 42
	tx2 := NewMsgTx()
	tx2.Time = 42

	if tx1.TxHash() != tx2.TxHash() {
		t.Fatal("identical transactions must hash identically")
	}

	tx2.Time = 43
	if tx1.TxHash() == tx2.TxHash() {
		t.Fatal("differing transactions must not hash identically")
	}
}
