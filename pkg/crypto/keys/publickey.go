package keys

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/nspcc-dev/walletkit/pkg/crypto/hash"
	"github.com/nspcc-dev/walletkit/pkg/io"
	"github.com/nspcc-dev/walletkit/pkg/util"
)

// Curve identifies the elliptic curve a public key belongs to.
type Curve byte

// Supported curves.
const (
	// Secp256r1 is the NIST P-256 curve used by NEO and passkey owners.
	Secp256r1 Curve = iota
	// Secp256k1 is the Koblitz curve used by Bitcoin and Ethereum.
	Secp256k1
)

const (
	// CompressedSize is the size of a compressed public key.
	CompressedSize = 33
	// UncompressedSize is the size of an uncompressed public key.
	UncompressedSize = 65
)

// ErrInvalidKey is returned for byte sequences that are not a point on the
// requested curve.
var ErrInvalidKey = errors.New("invalid public key")

// PublicKey is a validated elliptic curve point kept in compressed form.
type PublicKey struct {
	curve      Curve
	compressed [CompressedSize]byte
	// uncompressed is kept alongside since both forms are requested by
	// different owner schemes.
	uncompressed [UncompressedSize]byte
}

// String implements the Stringer interface.
func (c Curve) String() string {
	switch c {
	case Secp256r1:
		return "secp256r1"
	case Secp256k1:
		return "secp256k1"
	default:
		return fmt.Sprintf("curve(%d)", byte(c))
	}
}

// NewPublicKeyFromBytes parses a compressed or uncompressed SEC1 encoded
// point on the given curve.
func NewPublicKeyFromBytes(b []byte, c Curve) (*PublicKey, error) {
	var p = &PublicKey{curve: c}
	switch c {
	case Secp256k1:
		k, err := secp256k1.ParsePubKey(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		copy(p.compressed[:], k.SerializeCompressed())
		copy(p.uncompressed[:], k.SerializeUncompressed())
	case Secp256r1:
		switch len(b) {
		case CompressedSize:
			x, y := elliptic.UnmarshalCompressed(elliptic.P256(), b)
			if x == nil {
				return nil, fmt.Errorf("%w: not a secp256r1 point", ErrInvalidKey)
			}
			p.uncompressed[0] = 0x04
			x.FillBytes(p.uncompressed[1:33])
			y.FillBytes(p.uncompressed[33:])
			copy(p.compressed[:], b)
		case UncompressedSize:
			if _, err := ecdh.P256().NewPublicKey(b); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
			}
			copy(p.uncompressed[:], b)
			p.compressed[0] = 0x02 | b[UncompressedSize-1]&1
			copy(p.compressed[1:], b[1:33])
		default:
			return nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidKey, len(b))
		}
	default:
		return nil, fmt.Errorf("%w: unknown %s", ErrInvalidKey, c)
	}
	return p, nil
}

// NewPublicKeyFromString returns a public key created from the
// given hex string.
func NewPublicKeyFromString(s string, c Curve) (*PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return NewPublicKeyFromBytes(b, c)
}

// Curve returns the curve of the key.
func (p *PublicKey) Curve() Curve {
	return p.curve
}

// Bytes returns the compressed representation of the key.
func (p *PublicKey) Bytes() []byte {
	b := p.compressed
	return b[:]
}

// UncompressedBytes returns the uncompressed representation of the key.
func (p *PublicKey) UncompressedBytes() []byte {
	b := p.uncompressed
	return b[:]
}

// Equal returns true in case public keys are equal.
func (p *PublicKey) Equal(key *PublicKey) bool {
	return p.curve == key.curve && p.compressed == key.compressed
}

// StringCompressed returns the hex string of the compressed key.
func (p *PublicKey) StringCompressed() string {
	return hex.EncodeToString(p.compressed[:])
}

// GetVerificationScript returns NEO signature verification script for the
// key: PUSHBYTES33 <key> CHECKSIG.
func (p *PublicKey) GetVerificationScript() []byte {
	const (
		pushBytes33 = 0x21
		checkSig    = 0xac
	)
	script := make([]byte, 0, CompressedSize+2)
	script = append(script, pushBytes33)
	script = append(script, p.compressed[:]...)
	return append(script, checkSig)
}

// GetScriptHash returns a Hash160 of the verification script of the key.
func (p *PublicKey) GetScriptHash() util.Uint160 {
	return hash.Hash160(p.GetVerificationScript())
}

// DecodeBinary decodes a compressed secp256r1 public key. Only the compressed
// form is accepted, so that the encoding round-trips.
func (p *PublicKey) DecodeBinary(r *io.BinReader) {
	var b [CompressedSize]byte
	r.ReadBytes(b[:])
	if r.Err != nil {
		return
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		r.Err = fmt.Errorf("%w: prefix 0x%02x is not compressed", ErrInvalidKey, b[0])
		return
	}
	k, err := NewPublicKeyFromBytes(b[:], Secp256r1)
	if err != nil {
		r.Err = err
		return
	}
	*p = *k
}

// EncodeBinary encodes the key in compressed form. Only secp256r1 keys can
// be encoded, the zero value is rejected as DecodeBinary would.
func (p *PublicKey) EncodeBinary(w *io.BinWriter) {
	if w.Err != nil {
		return
	}
	if p.compressed[0] != 0x02 && p.compressed[0] != 0x03 {
		w.Err = fmt.Errorf("%w: prefix 0x%02x is not compressed", ErrInvalidKey, p.compressed[0])
		return
	}
	if p.curve != Secp256r1 {
		w.Err = fmt.Errorf("%w: %s key can't be encoded", ErrInvalidKey, p.curve)
		return
	}
	w.WriteBytes(p.compressed[:])
}

// MarshalJSON implements the json.Marshaler interface.
func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.StringCompressed())
}
