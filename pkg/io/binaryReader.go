package io

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// MaxArraySize is the maximum size of an array or byte slice which can be
// decoded when no tighter limit is given.
const MaxArraySize = 0x1000000

var (
	// ErrTruncated is returned when the input has fewer bytes left than a
	// length prefix or a fixed-width field declares.
	ErrTruncated = errors.New("truncated input")
	// ErrNonCanonical is returned for variable-length integers not encoded in
	// their minimal form.
	ErrNonCanonical = errors.New("non-canonical variable-length integer")
	// ErrTooBig is returned when a length prefix exceeds the allowed maximum.
	ErrTooBig = errors.New("length exceeds the limit")
	// ErrWidth is returned for fixed-width integers of unsupported width.
	ErrWidth = errors.New("unsupported integer width")
	// ErrInvalidBool is returned for boolean bytes other than 0 and 1.
	ErrInvalidBool = errors.New("invalid boolean value")
)

// BinReader is a bounds-checked cursor over a byte slice. The first read
// error is kept in Err and turns every subsequent read into a no-op, which
// simplifies decoding of structures with many fields.
type BinReader struct {
	buf []byte
	pos int
	Err error
}

// NewBinReaderFromBuf makes a BinReader from byte buffer.
func NewBinReaderFromBuf(b []byte) *BinReader {
	return &BinReader{buf: b}
}

// Pos returns the current offset into the underlying buffer.
func (r *BinReader) Pos() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *BinReader) Len() int {
	return len(r.buf) - r.pos
}

// next consumes n bytes returning them as a subslice of the buffer.
func (r *BinReader) next(n int) []byte {
	if r.Err != nil {
		return nil
	}
	if n < 0 || n > r.Len() {
		r.Err = fmt.Errorf("%w: %d byte(s) needed at offset %d, %d left", ErrTruncated, n, r.pos, r.Len())
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

// ReadB reads a single byte.
func (r *BinReader) ReadB() byte {
	if b := r.next(1); b != nil {
		return b[0]
	}
	return 0
}

// ReadBool reads a boolean encoded as a single 0 or 1 byte, any other value
// is an error since it can't be written back.
func (r *BinReader) ReadBool() bool {
	b := r.ReadB()
	if r.Err == nil && b > 1 {
		r.Err = fmt.Errorf("%w: 0x%02x at offset %d", ErrInvalidBool, b, r.pos-1)
		return false
	}
	return b == 1
}

// ReadU16LE reads a little-endian encoded uint16 value.
func (r *BinReader) ReadU16LE() uint16 {
	if b := r.next(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

// ReadU32LE reads a little-endian encoded uint32 value.
func (r *BinReader) ReadU32LE() uint32 {
	if b := r.next(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

// ReadU64LE reads a little-endian encoded uint64 value.
func (r *BinReader) ReadU64LE() uint64 {
	if b := r.next(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

// ReadFixedLE reads width bytes (1 to 8) as a little-endian unsigned integer.
func (r *BinReader) ReadFixedLE(width int) uint64 {
	if r.Err != nil {
		return 0
	}
	if width < 1 || width > 8 {
		r.Err = fmt.Errorf("%w: %d", ErrWidth, width)
		return 0
	}
	b := r.next(width)
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// ReadVarUint reads a variable-length-encoded integer. Only the minimal
// encoding of any value is accepted.
func (r *BinReader) ReadVarUint() uint64 {
	var (
		v   uint64
		min uint64
	)
	switch b := r.ReadB(); b {
	case 0xfd:
		v, min = uint64(r.ReadU16LE()), 0xfd
	case 0xfe:
		v, min = uint64(r.ReadU32LE()), 0x10000
	case 0xff:
		v, min = r.ReadU64LE(), 0x100000000
	default:
		return uint64(b)
	}
	if r.Err == nil && v < min {
		r.Err = fmt.Errorf("%w: %d at offset %d", ErrNonCanonical, v, r.pos)
		return 0
	}
	return v
}

// ReadBytes fills b with the next len(b) bytes.
func (r *BinReader) ReadBytes(b []byte) {
	copy(b, r.next(len(b)))
}

// ReadVarBytes reads a length-prefixed byte slice. The result never aliases
// the underlying buffer. maxSize overrides MaxArraySize.
func (r *BinReader) ReadVarBytes(maxSize ...int) []byte {
	n := r.readLen(maxSize)
	if r.Err != nil {
		return nil
	}
	b := make([]byte, n)
	r.ReadBytes(b)
	if r.Err != nil {
		return nil
	}
	return b
}

// ReadString reads a length-prefixed string.
func (r *BinReader) ReadString(maxSize ...int) string {
	n := r.readLen(maxSize)
	return string(r.next(n))
}

// ReadArrayLen reads an element count prefix, checking it against maxSize.
func (r *BinReader) ReadArrayLen(maxSize ...int) int {
	return r.readLen(maxSize)
}

func (r *BinReader) readLen(maxSize []int) int {
	ms := MaxArraySize
	if len(maxSize) != 0 {
		ms = maxSize[0]
	}
	n := r.ReadVarUint()
	if r.Err != nil {
		return 0
	}
	if n > uint64(ms) {
		r.Err = fmt.Errorf("%w: %d > %d", ErrTooBig, n, ms)
		return 0
	}
	return int(n)
}
