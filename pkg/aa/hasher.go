/*
Package aa derives counterfactual smart account addresses and the init code
deploying them. Nothing here depends on chain state: the address of an
account is a pure function of its factory, owner and implementation.
*/
package aa

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/walletkit/pkg/crypto/hash"
)

// WordSize is the size of the salt and of the init code hash in the address
// preimage.
const WordSize = 32

// ErrDigestSize is returned when the hasher produces digests that are too
// short for the scheme.
var ErrDigestSize = errors.New("digest is too short")

// Hasher is a deterministic hash function. It must be safe for concurrent
// use, every call with the same input must return the same digest.
type Hasher func([]byte) []byte

// Keccak256 is the Hasher used by EVM chains.
func Keccak256(b []byte) []byte {
	return hash.Keccak256(b).BytesBE()
}

// Sha256 is a SHA-256 Hasher.
func Sha256(b []byte) []byte {
	return hash.Sha256(b).BytesBE()
}

// word hashes b and returns the first WordSize bytes of the digest.
func (h Hasher) word(b []byte) ([]byte, error) {
	d := h(b)
	if len(d) < WordSize {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrDigestSize, len(d), WordSize)
	}
	return d[:WordSize], nil
}
