package transaction

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nspcc-dev/walletkit/pkg/crypto/keys"
	"github.com/nspcc-dev/walletkit/pkg/encoding/address"
	"github.com/nspcc-dev/walletkit/pkg/encoding/fixedn"
	"github.com/nspcc-dev/walletkit/pkg/io"
	"github.com/nspcc-dev/walletkit/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pubHex = "036b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"

func testKey(t *testing.T) keys.PublicKey {
	k, err := keys.NewPublicKeyFromString(pubHex, keys.Secp256r1)
	require.NoError(t, err)
	return *k
}

func testWitness(t *testing.T) Witness {
	k := testKey(t)
	return Witness{
		InvocationScript:   append([]byte{0x40}, make([]byte, 64)...),
		VerificationScript: k.GetVerificationScript(),
	}
}

// sampleTransactions returns a transaction of every registered type at its
// maximum version with every field set.
func sampleTransactions(t *testing.T) map[TXType]*Transaction {
	k := testKey(t)
	data := []Data{
		&MinerTX{Nonce: 42},
		&IssueTX{},
		&ClaimTX{Claims: []Input{{PrevHash: util.Uint256{1, 2, 3}, PrevIndex: 7}, {PrevHash: util.Uint256{4}, PrevIndex: 0}}},
		&EnrollmentTX{PublicKey: k},
		&RegisterTX{
			AssetType: Token,
			Name:      "NEO",
			Amount:    fixedn.Fixed8FromInt64(100000000),
			Precision: 0,
			Owner:     k,
			Admin:     util.Uint160{1, 2, 3},
		},
		&ContractTX{},
		&StateTX{Descriptors: []StateDescriptor{{
			Type:  Validator,
			Key:   k.Bytes(),
			Field: "Registered",
			Value: []byte{1},
		}}},
		&PublishTX{
			Script:      []byte{0x51},
			ParamList:   []ParamType{StringType, ArrayType},
			ReturnType:  BoolType,
			NeedStorage: true,
			Name:        "test",
			CodeVersion: "1.0",
			Author:      "author",
			Email:       "mail@example.com",
			Description: "descr",
		},
		&InvocationTX{Script: []byte{0x51, 0x52}, Gas: 100500},
	}
	res := make(map[TXType]*Transaction, len(data))
	for _, d := range data {
		v, err := MaxVersion(d.Type())
		require.NoError(t, err)
		res[d.Type()] = &Transaction{
			Type:    d.Type(),
			Version: v,
			Data:    d,
			Attributes: []Attribute{
				{Usage: Remark, Data: []byte("hello")},
				{Usage: Script, Data: make([]byte, 20)},
			},
			Scripts: []Witness{testWitness(t)},
		}
	}
	return res
}

func decodeHex(t *testing.T, s string) (*Transaction, error) {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return NewTransactionFromBytes(b)
}

func TestInvocationEmptyScript(t *testing.T) {
	tx := NewInvocationTX([]byte{}, 0)
	b, err := tx.Bytes()
	require.NoError(t, err)
	require.Equal(t, "d101000000"+"0000000000000000", hex.EncodeToString(b))

	actual, err := NewTransactionFromBytes(b)
	require.NoError(t, err)
	require.True(t, tx.Equals(actual))
	require.Equal(t, tx, actual)
}

func TestInvocationVersionGate(t *testing.T) {
	t.Run("v0", func(t *testing.T) {
		tx, err := decodeHex(t, "d10000000151")
		require.NoError(t, err)
		inv := tx.Data.(*InvocationTX)
		require.Equal(t, []byte{0x51}, inv.Script)
		require.Equal(t, uint64(0), inv.Gas)

		// Gas is not emitted at version 0.
		inv.Gas = 5
		b, err := tx.Bytes()
		require.NoError(t, err)
		require.Equal(t, "d10000000151", hex.EncodeToString(b))
	})
	t.Run("v0, gas bytes are trailing", func(t *testing.T) {
		_, err := decodeHex(t, "d100000001510500000000000000")
		require.ErrorIs(t, err, ErrTrailingData)
	})
	t.Run("v1", func(t *testing.T) {
		tx, err := decodeHex(t, "d10100000151"+"0500000000000000")
		require.NoError(t, err)
		require.Equal(t, uint64(5), tx.Data.(*InvocationTX).Gas)
	})
	t.Run("v1, no gas", func(t *testing.T) {
		_, err := decodeHex(t, "d10100000151")
		require.ErrorIs(t, err, io.ErrTruncated)
		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		require.Equal(t, "InvocationTX.Gas", fe.Field)
	})
	t.Run("v2", func(t *testing.T) {
		_, err := decodeHex(t, "d10200000151"+"0500000000000000")
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})
}

func TestPublishVersionGate(t *testing.T) {
	tx := sampleTransactions(t)[PublishType]
	pub := tx.Data.(*PublishTX)

	v1, err := tx.Bytes()
	require.NoError(t, err)
	tx.Version = 0
	v0, err := tx.Bytes()
	require.NoError(t, err)
	require.Equal(t, len(v1)-1, len(v0))

	actual, err := NewTransactionFromBytes(v0)
	require.NoError(t, err)
	require.False(t, actual.Data.(*PublishTX).NeedStorage)
	require.Equal(t, pub.Description, actual.Data.(*PublishTX).Description)
}

func TestRoundTrip(t *testing.T) {
	for typ, tx := range sampleTransactions(t) {
		t.Run(typ.String(), func(t *testing.T) {
			b, err := tx.Bytes()
			require.NoError(t, err)

			actual, err := NewTransactionFromBytes(b)
			require.NoError(t, err)
			require.True(t, tx.Equals(actual))

			again, err := actual.Bytes()
			require.NoError(t, err)
			require.Equal(t, b, again)
		})
	}
}

func TestTruncatedInput(t *testing.T) {
	for typ, tx := range sampleTransactions(t) {
		t.Run(typ.String(), func(t *testing.T) {
			b, err := tx.Bytes()
			require.NoError(t, err)
			for i := 0; i < len(b); i++ {
				_, err = NewTransactionFromBytes(b[:i])
				require.ErrorIs(t, err, io.ErrTruncated, "length %d", i)
			}
		})
	}
}

func TestTrailingData(t *testing.T) {
	b, err := NewInvocationTX([]byte{0x51}, 1).Bytes()
	require.NoError(t, err)
	_, err = NewTransactionFromBytes(append(b, 0))
	require.ErrorIs(t, err, ErrTrailingData)
}

func TestUnknownType(t *testing.T) {
	_, err := decodeHex(t, "ff000000")
	require.ErrorIs(t, err, ErrUnknownType)
	var ute *UnknownTypeError
	require.True(t, errors.As(err, &ute))
	require.Equal(t, TXType(0xff), ute.Type)
	require.Contains(t, err.Error(), "0xff")

	_, err = (&Transaction{Type: 0x33, Data: &MinerTX{}}).Bytes()
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestMalformedAttribute(t *testing.T) {
	testCases := map[string]string{
		"unknown usage":    "d101" + "01" + "99" + "00" + "00",
		"too many":         "d101" + "11",
		"long description": "d101" + "01" + "90" + "fe00000100",
	}
	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeHex(t, raw)
			require.ErrorIs(t, err, ErrMalformedAttribute)
			require.Equal(t, 1, strings.Count(err.Error(), ErrMalformedAttribute.Error()))
		})
	}
	t.Run("path", func(t *testing.T) {
		_, err := decodeHex(t, "d101"+"02"+"f00161"+"99")
		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		require.Equal(t, "attributes[1]", fe.Field)
	})
}

func TestMalformedWitness(t *testing.T) {
	_, err := decodeHex(t, "d101"+"00"+"01"+"fe01000100")
	require.ErrorIs(t, err, ErrMalformedWitness)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, "scripts[0]", fe.Field)

	tx := NewInvocationTX(nil, 0)
	tx.Scripts = []Witness{{InvocationScript: make([]byte, MaxInvocationScript+1)}}
	_, err = tx.Bytes()
	require.ErrorIs(t, err, ErrMalformedWitness)
}

func TestNonCanonicalCount(t *testing.T) {
	_, err := decodeHex(t, "d101"+"fd0000")
	require.ErrorIs(t, err, io.ErrNonCanonical)
}

func TestDataMismatch(t *testing.T) {
	tx := &Transaction{Type: MinerType, Data: &InvocationTX{}}
	_, err := tx.Bytes()
	require.ErrorIs(t, err, ErrDataMismatch)

	tx = &Transaction{Type: MinerType}
	_, err = tx.Bytes()
	require.ErrorIs(t, err, ErrDataMismatch)

	tx = &Transaction{Type: IssueType, Version: 2, Data: &IssueTX{}}
	_, err = tx.Bytes()
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestEquals(t *testing.T) {
	a := NewInvocationTX([]byte{1}, 10)
	b := NewInvocationTX([]byte{1}, 10)
	require.True(t, a.Equals(b))

	b.Data.(*InvocationTX).Gas = 11
	require.False(t, a.Equals(b))

	b = NewInvocationTX([]byte{1}, 10)
	b.Attributes = append(b.Attributes, Attribute{Usage: Remark, Data: []byte{1}})
	require.False(t, a.Equals(b))

	b = NewInvocationTX([]byte{1}, 10)
	b.Version = 0
	require.False(t, a.Equals(b))

	require.False(t, a.Equals(nil))
	require.True(t, (*Transaction)(nil).Equals(nil))
	require.False(t, a.Equals(&Transaction{Type: MinerType, Version: 1, Data: &MinerTX{}}))
}

func TestHashExcludesWitnesses(t *testing.T) {
	tx := sampleTransactions(t)[ContractType]
	h1, err := tx.Hash()
	require.NoError(t, err)

	tx.Scripts = nil
	h2, err := tx.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	tx.Attributes = nil
	h3, err := tx.Hash()
	require.NoError(t, err)
	require.NotEqual(t, h1, h3)
}

func TestRegistry(t *testing.T) {
	require.Len(t, registry, 9)
	for typ, v := range registry {
		d := v.new()
		require.Equal(t, typ, d.Type())
		require.NotEqual(t, "UnknownTransaction", typ.String())

		byName, err := TXTypeFromString(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, byName)

		mv, err := MaxVersion(typ)
		require.NoError(t, err)
		require.Equal(t, v.maxVersion, mv)
	}
	_, err := TXTypeFromString("FooTransaction")
	require.ErrorIs(t, err, ErrUnknownType)
	_, err = MaxVersion(0x33)
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestMarshalJSON(t *testing.T) {
	tx := sampleTransactions(t)[InvocationType]
	data, err := json.Marshal(tx)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "InvocationTransaction", m["type"])
	assert.Equal(t, float64(1), m["version"])
	h, err := tx.Hash()
	require.NoError(t, err)
	assert.Equal(t, "0x"+h.StringLE(), m["txid"])
	assert.Contains(t, m, "data")

	scripts := m["scripts"].([]any)
	require.Len(t, scripts, 1)
	assert.Equal(t, address.Uint160ToString(tx.Scripts[0].ScriptHash()), scripts[0].(map[string]any)["address"])

	data, err = json.Marshal(sampleTransactions(t)[ContractType])
	require.NoError(t, err)
	m = nil
	require.NoError(t, json.Unmarshal(data, &m))
	_, ok := m["data"]
	assert.False(t, ok)
}
