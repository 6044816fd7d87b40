package io

import "fmt"

// DecodeVarBytes reads a length-prefixed byte slice starting at pos in buf.
// It returns the bytes read and the number of bytes consumed including the
// prefix.
func DecodeVarBytes(buf []byte, pos int) ([]byte, int, error) {
	r, err := readerAt(buf, pos)
	if err != nil {
		return nil, 0, err
	}
	b := r.ReadVarBytes()
	if r.Err != nil {
		return nil, 0, r.Err
	}
	return b, r.Pos(), nil
}

// EncodeVarBytes returns b prefixed with its length in the minimal
// variable-length form.
func EncodeVarBytes(b []byte) []byte {
	var pre [9]byte
	n := PutVarUint(pre[:], uint64(len(b)))
	res := make([]byte, 0, GetVarSize(b))
	res = append(res, pre[:n]...)
	return append(res, b...)
}

// DecodeFixedLE interprets width bytes at pos in buf as a little-endian
// unsigned integer.
func DecodeFixedLE(buf []byte, pos int, width int) (uint64, error) {
	r, err := readerAt(buf, pos)
	if err != nil {
		return 0, err
	}
	v := r.ReadFixedLE(width)
	return v, r.Err
}

// EncodeFixedLE returns exactly width bytes holding val in little-endian
// form.
func EncodeFixedLE(val uint64, width int) ([]byte, error) {
	w := NewBufBinWriter()
	w.WriteFixedLE(val, width)
	if w.Err != nil {
		return nil, w.Err
	}
	return w.Bytes(), nil
}

func readerAt(buf []byte, pos int) (*BinReader, error) {
	if pos < 0 || pos > len(buf) {
		return nil, fmt.Errorf("%w: offset %d is out of %d byte(s)", ErrTruncated, pos, len(buf))
	}
	return NewBinReaderFromBuf(buf[pos:]), nil
}
