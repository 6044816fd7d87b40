/*
Package bridge exposes account derivation and transaction coding to host
applications. Requests come as protobuf-encoded blobs, and no function here
returns an error: failures collapse into empty results.
*/
package bridge

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nspcc-dev/walletkit/pkg/aa"
	"github.com/nspcc-dev/walletkit/pkg/core/transaction"
	"github.com/nspcc-dev/walletkit/pkg/crypto/keys"
)

// GetCounterfactualAddress returns the checksummed address of the account
// described by an AccountInput blob or an empty string.
func GetCounterfactualAddress(blob []byte) string {
	addr, err := counterfactualAddress(blob)
	if err != nil {
		return ""
	}
	return addr
}

func counterfactualAddress(blob []byte) (string, error) {
	var in AccountInput
	if err := in.Unmarshal(blob); err != nil {
		return "", err
	}
	acc, err := in.account()
	if err != nil {
		return "", err
	}
	addr, err := aa.ComputeCounterfactualAddress(acc.Factory, acc.Owner, acc.Implementation, aa.Keccak256)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}

func (in *AccountInput) account() (aa.Account, error) {
	factory, err := parseAddress("factory", in.Factory)
	if err != nil {
		return aa.Account{}, err
	}
	impl, err := parseAddress("implementation", in.Implementation)
	if err != nil {
		return aa.Account{}, err
	}
	if len(in.Owner) == 0 {
		return aa.Account{}, fmt.Errorf("%w: empty owner", ErrParse)
	}
	return aa.Account{Factory: factory, Owner: in.Owner, Implementation: impl}, nil
}

// GetInitCode returns the init code deploying the account or nil.
func GetInitCode(factory string, owner []byte, implementation string) []byte {
	in := AccountInput{Factory: factory, Owner: owner, Implementation: implementation}
	acc, err := in.account()
	if err != nil {
		return nil
	}
	code, err := aa.BuildInitCode(acc.Factory, acc.Owner, acc.Implementation)
	if err != nil {
		return nil
	}
	return code
}

// GetBarzAddress returns the checksummed address of the Barz account
// described by a BarzInput blob or an empty string.
func GetBarzAddress(blob []byte) string {
	addr, err := barzAddress(blob)
	if err != nil {
		return ""
	}
	return addr
}

func barzAddress(blob []byte) (string, error) {
	var in BarzInput
	if err := in.Unmarshal(blob); err != nil {
		return "", err
	}
	var (
		res aa.BarzInput
		err error
	)
	for _, a := range []struct {
		name string
		src  string
		dst  *common.Address
	}{
		{"factory", in.Factory, &res.Factory},
		{"entry point", in.EntryPoint, &res.EntryPoint},
		{"account facet", in.AccountFacet, &res.AccountFacet},
		{"verification facet", in.VerificationFacet, &res.VerificationFacet},
		{"facet registry", in.FacetRegistry, &res.FacetRegistry},
		{"default fallback", in.DefaultFallback, &res.DefaultFallback},
	} {
		if *a.dst, err = parseAddress(a.name, a.src); err != nil {
			return "", err
		}
	}
	if res.Bytecode, err = parseHex("bytecode", in.Bytecode); err != nil {
		return "", err
	}
	if res.Owner, err = ownerKey(in.PublicKey); err != nil {
		return "", err
	}
	res.Salt = in.Salt
	addr, err := aa.BarzAddress(res, aa.Keccak256)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}

// ownerKey parses a hex-encoded secp256k1 key returning its uncompressed
// form.
func ownerKey(s string) ([]byte, error) {
	b, err := parseHex("public key", s)
	if err != nil {
		return nil, err
	}
	k, err := keys.NewPublicKeyFromBytes(b, keys.Secp256k1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return k.UncompressedBytes(), nil
}

// GetBarzInitCode returns the user operation init code for a Barz account
// owned by the given secp256k1 key or nil.
func GetBarzInitCode(factory string, publicKey []byte, verificationFacet string, salt uint32) []byte {
	f, err := parseAddress("factory", factory)
	if err != nil {
		return nil
	}
	v, err := parseAddress("verification facet", verificationFacet)
	if err != nil {
		return nil
	}
	k, err := keys.NewPublicKeyFromBytes(publicKey, keys.Secp256k1)
	if err != nil {
		return nil
	}
	code, err := aa.BarzInitCode(f, k.UncompressedBytes(), v, salt)
	if err != nil {
		return nil
	}
	return code
}

// DecodeTransaction decodes a serialized transaction or returns nil.
func DecodeTransaction(blob []byte) *transaction.Transaction {
	tx, err := transaction.NewTransactionFromBytes(blob)
	if err != nil {
		return nil
	}
	return tx
}

// EncodeTransaction serializes the transaction or returns nil.
func EncodeTransaction(tx *transaction.Transaction) []byte {
	if tx == nil {
		return nil
	}
	b, err := tx.Bytes()
	if err != nil {
		return nil
	}
	return b
}
