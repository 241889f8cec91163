// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
)

// binarySerializer provides a single shared scratch buffer used to serialize
// primitive integer values to an io.Writer; it does no deserializing.
// This is the same low-allocation pattern the wire package has always used
// for wire messages; every field that ends up inside a consensus hash goes
// through one of these helpers so the byte layout is never left to a
// generic encoding/gob- or reflect-based path.
type binarySerializer struct {
	buf [8]byte
}

var bs binarySerializer

// PutUint16 appends the little-endian encoding of v to w.
func (s *binarySerializer) PutUint16(w io.Writer, v uint16) error {
	binary.LittleEndian.PutUint16(s.buf[:2], v)
	_, err := w.Write(s.buf[:2])
	return err
}

// PutUint32 appends the little-endian encoding of v to w.
func (s *binarySerializer) PutUint32(w io.Writer, v uint32) error {
	binary.LittleEndian.PutUint32(s.buf[:4], v)
	_, err := w.Write(s.buf[:4])
	return err
}

// PutUint64 appends the little-endian encoding of v to w.
func (s *binarySerializer) PutUint64(w io.Writer, v uint64) error {
	binary.LittleEndian.PutUint64(s.buf[:8], v)
	_, err := w.Write(s.buf[:8])
	return err
}

// PutUint32LE writes the little-endian byte encoding of v into the first 4
// bytes of dst, which must be at least that long. It does not grow dst; the
// kernel hash input is built with AppendUint32LE instead.
func PutUint32LE(dst []byte, v uint32) {
	binary.LittleEndian.PutUint32(dst, v)
}

// PutUint64LE writes the little-endian byte encoding of v into the first 8
// bytes of dst, which must be at least that long.
func PutUint64LE(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}

// AppendUint32LE returns buf with the little-endian encoding of v appended.
func AppendUint32LE(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// AppendUint64LE returns buf with the little-endian encoding of v appended.
func AppendUint64LE(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// writeElement writes the little-endian binary representation of element to
// w.  Only the primitive kinds the wire format actually uses are supported;
// anything else is a programming error, not a data error.
func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		return bs.PutUint32(w, uint32(e))
	case uint32:
		return bs.PutUint32(w, e)
	case int64:
		return bs.PutUint64(w, uint64(e))
	case uint64:
		return bs.PutUint64(w, e)
	case []byte:
		_, err := w.Write(e)
		return err
	}
	return nil
}
