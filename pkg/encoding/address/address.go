/*
Package address implements conversion of script hashes to/from NEO
Base58Check addresses.
*/
package address

import (
	"errors"

	"github.com/nspcc-dev/walletkit/pkg/encoding/base58"
	"github.com/nspcc-dev/walletkit/pkg/util"
)

const (
	// NEO2Prefix is the first byte of an address for NEO2.
	NEO2Prefix byte = 0x17
)

// Prefix is the byte used to prepend to addresses when encoding them, it can
// be changed and defaults to NEO2Prefix.
var Prefix = NEO2Prefix

// Uint160ToString returns the "NEO address" from the given Uint160.
func Uint160ToString(u util.Uint160) string {
	// Dont forget to prepend the Address version 0x17 (23) A
	b := append([]byte{Prefix}, u.BytesBE()...)
	return base58.CheckEncode(b)
}

// StringToUint160 attempts to decode the given NEO address string
// into a Uint160.
func StringToUint160(s string) (u util.Uint160, err error) {
	b, err := base58.CheckDecode(s)
	if err != nil {
		return u, err
	}
	if b[0] != Prefix {
		return u, errors.New("wrong address prefix")
	}
	return util.Uint160DecodeBytesBE(b[1:])
}
