package io

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrOverflow is returned when a value doesn't fit into the requested width.
var ErrOverflow = errors.New("value overflows the width")

// BinWriter is a convenient wrapper around an io.Writer and err object.
// Used to simplify error handling when writing into an io.Writer
// from a struct with many fields.
type BinWriter struct {
	w   io.Writer
	Err error
	uv  [9]byte
}

// NewBinWriterFromIO makes a BinWriter from io.Writer.
func NewBinWriterFromIO(iow io.Writer) *BinWriter {
	return &BinWriter{w: iow}
}

// WriteU64LE writes a uint64 value into the underlying io.Writer in
// little-endian format.
func (w *BinWriter) WriteU64LE(u64 uint64) {
	binary.LittleEndian.PutUint64(w.uv[:8], u64)
	w.WriteBytes(w.uv[:8])
}

// WriteU32LE writes a uint32 value into the underlying io.Writer in
// little-endian format.
func (w *BinWriter) WriteU32LE(u32 uint32) {
	binary.LittleEndian.PutUint32(w.uv[:4], u32)
	w.WriteBytes(w.uv[:4])
}

// WriteU16LE writes a uint16 value into the underlying io.Writer in
// little-endian format.
func (w *BinWriter) WriteU16LE(u16 uint16) {
	binary.LittleEndian.PutUint16(w.uv[:2], u16)
	w.WriteBytes(w.uv[:2])
}

// WriteFixedLE writes exactly width bytes (1 to 8) of val in little-endian
// format, zero-padded on the high end.
func (w *BinWriter) WriteFixedLE(val uint64, width int) {
	if w.Err != nil {
		return
	}
	if width < 1 || width > 8 {
		w.Err = fmt.Errorf("%w: %d", ErrWidth, width)
		return
	}
	if width < 8 && val>>(8*uint(width)) != 0 {
		w.Err = fmt.Errorf("%w: %d in %d byte(s)", ErrOverflow, val, width)
		return
	}
	binary.LittleEndian.PutUint64(w.uv[:8], val)
	w.WriteBytes(w.uv[:width])
}

// WriteB writes a byte into the underlying io.Writer.
func (w *BinWriter) WriteB(u8 byte) {
	w.uv[0] = u8
	w.WriteBytes(w.uv[:1])
}

// WriteBool writes a boolean value into the underlying io.Writer encoded as
// a byte with values of 0 or 1.
func (w *BinWriter) WriteBool(b bool) {
	var i byte
	if b {
		i = 1
	}
	w.WriteB(i)
}

// WriteArray writes a slice arr into w prefixed with its length. Elements
// may implement EncodeBinary on a pointer receiver. maxSize limits the
// number of elements the same way BinReader.ReadArrayLen does.
func WriteArray[E any, PE interface {
	*E
	encodable
}](w *BinWriter, arr []E, maxSize ...int) {
	w.WriteArrayLen(len(arr), maxSize...)
	for i := range arr {
		PE(&arr[i]).EncodeBinary(w)
	}
}

// WriteVarUint writes a uint64 into the underlying writer using variable-length encoding.
func (w *BinWriter) WriteVarUint(val uint64) {
	if w.Err != nil {
		return
	}

	n := PutVarUint(w.uv[:], val)
	w.WriteBytes(w.uv[:n])
}

// PutVarUint puts a val in the varint form to the pre-allocated buffer
// using the shortest possible encoding.
func PutVarUint(data []byte, val uint64) int {
	_ = data[8]
	if val < 0xfd {
		data[0] = byte(val)
		return 1
	}
	if val <= 0xFFFF {
		data[0] = byte(0xfd)
		binary.LittleEndian.PutUint16(data[1:], uint16(val))
		return 3
	}
	if val <= 0xFFFFFFFF {
		data[0] = byte(0xfe)
		binary.LittleEndian.PutUint32(data[1:], uint32(val))
		return 5
	}

	data[0] = byte(0xff)
	binary.LittleEndian.PutUint64(data[1:], val)
	return 9
}

// WriteBytes writes a variable byte into the underlying io.Writer without prefix.
func (w *BinWriter) WriteBytes(b []byte) {
	if w.Err != nil {
		return
	}
	_, w.Err = w.w.Write(b)
}

// WriteVarBytes writes a variable length byte array into the underlying
// io.Writer. maxSize overrides MaxArraySize.
func (w *BinWriter) WriteVarBytes(b []byte, maxSize ...int) {
	w.WriteArrayLen(len(b), maxSize...)
	w.WriteBytes(b)
}

// WriteString writes a variable length string into the underlying
// io.Writer. maxSize overrides MaxArraySize.
func (w *BinWriter) WriteString(s string, maxSize ...int) {
	w.WriteArrayLen(len(s), maxSize...)
	if w.Err != nil {
		return
	}
	_, w.Err = io.WriteString(w.w, s)
}

// WriteArrayLen writes an element count prefix, checking it against maxSize
// so that everything written can be read back with the same limit.
func (w *BinWriter) WriteArrayLen(n int, maxSize ...int) {
	if w.Err != nil {
		return
	}
	ms := MaxArraySize
	if len(maxSize) != 0 {
		ms = maxSize[0]
	}
	if n > ms {
		w.Err = fmt.Errorf("%w: %d > %d", ErrTooBig, n, ms)
		return
	}
	w.WriteVarUint(uint64(n))
}
