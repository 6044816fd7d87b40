package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeVarBytes(t *testing.T) {
	for _, l := range []int{0, 1, 0xfc, 0xfd, 0xffff, 0x10000} {
		data := bytes.Repeat([]byte{0x42}, l)
		enc := EncodeVarBytes(data)
		buf := append([]byte{0xee, 0xee}, enc...)

		dec, n, err := DecodeVarBytes(buf, 2)
		require.NoError(t, err)
		require.Equal(t, len(enc), n)
		require.Equal(t, data, dec)
	}
}

func TestDecodeVarBytesErrors(t *testing.T) {
	enc := EncodeVarBytes([]byte{1, 2, 3})

	_, _, err := DecodeVarBytes(enc[:len(enc)-1], 0)
	require.ErrorIs(t, err, ErrTruncated)

	_, _, err = DecodeVarBytes(enc, len(enc))
	require.ErrorIs(t, err, ErrTruncated)

	_, _, err = DecodeVarBytes(enc, len(enc)+1)
	require.ErrorIs(t, err, ErrTruncated)

	_, _, err = DecodeVarBytes(enc, -1)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestEncodeDecodeFixedLE(t *testing.T) {
	testCases := []struct {
		val   uint64
		width int
		enc   []byte
	}{
		{0, 8, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{1, 8, []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{0xff, 1, []byte{0xff}},
		{0xbeef, 2, []byte{0xef, 0xbe}},
		{0xbeef, 4, []byte{0xef, 0xbe, 0, 0}},
		{0xffffffffffffffff, 8, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tc := range testCases {
		enc, err := EncodeFixedLE(tc.val, tc.width)
		require.NoError(t, err)
		require.Equal(t, tc.enc, enc)

		v, err := DecodeFixedLE(append([]byte{0x00}, enc...), 1, tc.width)
		require.NoError(t, err)
		require.Equal(t, tc.val, v)

		_, err = DecodeFixedLE(enc[:len(enc)-1], 0, tc.width)
		require.ErrorIs(t, err, ErrTruncated)
	}

	_, err := EncodeFixedLE(0x10000, 2)
	require.ErrorIs(t, err, ErrOverflow)
}
