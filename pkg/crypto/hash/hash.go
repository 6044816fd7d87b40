/*
Package hash contains wrappers for the hash functions used by wallets:
SHA-256 and RIPEMD-160 combinations for NEO scripts and Keccak-256 for EVM
addresses.
*/
package hash

import (
	"crypto/sha256"

	"github.com/nspcc-dev/walletkit/pkg/util"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // NEO script hashes are defined over RIPEMD-160
	"golang.org/x/crypto/sha3"
)

// Sha256 hashes the incoming byte slice
// using the sha256 algorithm.
func Sha256(data []byte) util.Uint256 {
	return sha256.Sum256(data)
}

// DoubleSha256 performs sha256 twice on the given data.
func DoubleSha256(data []byte) util.Uint256 {
	h1 := Sha256(data)
	return Sha256(h1[:])
}

// RipeMD160 performs the RIPEMD160 hash algorithm
// on the given data.
func RipeMD160(data []byte) util.Uint160 {
	var hash util.Uint160
	hasher := ripemd160.New()
	_, _ = hasher.Write(data)

	hasher.Sum(hash[:0])
	return hash
}

// Hash160 performs sha256 and then ripemd160
// on the given data.
func Hash160(data []byte) util.Uint160 {
	h := Sha256(data)
	return RipeMD160(h[:])
}

// Keccak256 hashes the incoming byte slice using the legacy Keccak-256
// algorithm (not the final SHA3-256 standard).
func Keccak256(data []byte) util.Uint256 {
	var hash util.Uint256
	hasher := sha3.NewLegacyKeccak256()
	_, _ = hasher.Write(data)

	hasher.Sum(hash[:0])
	return hash
}

// Checksum returns the checksum for a given piece of data
// using sha256 twice as the hash algorithm.
func Checksum(data []byte) []byte {
	hash := DoubleSha256(data)
	return hash[:4]
}
