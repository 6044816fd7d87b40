package transaction

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nspcc-dev/walletkit/pkg/crypto/hash"
	"github.com/nspcc-dev/walletkit/pkg/encoding/address"
	"github.com/nspcc-dev/walletkit/pkg/io"
	"github.com/nspcc-dev/walletkit/pkg/util"
)

const (
	// MaxInvocationScript is the maximum length of allowed invocation
	// script.
	MaxInvocationScript = 65536

	// MaxVerificationScript is the maximum allowed length of verification
	// script.
	MaxVerificationScript = 65536
)

// Witness contains 2 scripts.
type Witness struct {
	InvocationScript   []byte
	VerificationScript []byte
}

// DecodeBinary implements the Serializable interface.
func (w *Witness) DecodeBinary(br *io.BinReader) {
	w.InvocationScript = br.ReadVarBytes(MaxInvocationScript)
	w.VerificationScript = br.ReadVarBytes(MaxVerificationScript)
	if errors.Is(br.Err, io.ErrTooBig) {
		br.Err = fmt.Errorf("%w: %w", ErrMalformedWitness, br.Err)
	}
}

// EncodeBinary implements the Serializable interface.
func (w *Witness) EncodeBinary(bw *io.BinWriter) {
	if bw.Err != nil {
		return
	}
	if len(w.InvocationScript) > MaxInvocationScript || len(w.VerificationScript) > MaxVerificationScript {
		bw.Err = fmt.Errorf("%w: script is too long", ErrMalformedWitness)
		return
	}
	bw.WriteVarBytes(w.InvocationScript)
	bw.WriteVarBytes(w.VerificationScript)
}

// ScriptHash returns the hash of the VerificationScript.
func (w Witness) ScriptHash() util.Uint160 {
	return hash.Hash160(w.VerificationScript)
}

// Equals compares both scripts of the witnesses.
func (w Witness) Equals(other Witness) bool {
	return bytes.Equal(w.InvocationScript, other.InvocationScript) &&
		bytes.Equal(w.VerificationScript, other.VerificationScript)
}

// MarshalJSON implements the json marshaller interface.
func (w Witness) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"invocation":   hex.EncodeToString(w.InvocationScript),
		"verification": hex.EncodeToString(w.VerificationScript),
		"address":      address.Uint160ToString(w.ScriptHash()),
	})
}
