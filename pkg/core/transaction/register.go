package transaction

import (
	"github.com/nspcc-dev/walletkit/pkg/crypto/keys"
	"github.com/nspcc-dev/walletkit/pkg/encoding/fixedn"
	"github.com/nspcc-dev/walletkit/pkg/io"
	"github.com/nspcc-dev/walletkit/pkg/util"
)

// MaxAssetNameLength is the maximum length of the registered asset name.
const MaxAssetNameLength = 1024

// RegisterTX represents a register transaction.
type RegisterTX struct {
	// The type of the asset being registered.
	AssetType AssetType `json:"type"`

	// Name of the asset being registered.
	Name string `json:"name"`

	// Amount registered.
	// Unlimited mode -0.00000001.
	Amount fixedn.Fixed8 `json:"amount"`

	// Decimals.
	Precision uint8 `json:"precision"`

	// Public key of the owner.
	Owner keys.PublicKey `json:"owner"`

	Admin util.Uint160 `json:"admin"`
}

// Type implements the Data interface.
func (tx *RegisterTX) Type() TXType { return RegisterType }

func (tx *RegisterTX) fields() []field {
	return []field{
		{name: "AssetType", decode: func(r *io.BinReader) { tx.AssetType = AssetType(r.ReadB()) }, encode: func(w *io.BinWriter) { w.WriteB(byte(tx.AssetType)) }},
		{name: "Name", decode: func(r *io.BinReader) { tx.Name = r.ReadString(MaxAssetNameLength) }, encode: func(w *io.BinWriter) { w.WriteString(tx.Name, MaxAssetNameLength) }},
		{name: "Amount", decode: tx.Amount.DecodeBinary, encode: tx.Amount.EncodeBinary},
		{name: "Precision", decode: func(r *io.BinReader) { tx.Precision = r.ReadB() }, encode: func(w *io.BinWriter) { w.WriteB(tx.Precision) }},
		{name: "Owner", decode: tx.Owner.DecodeBinary, encode: tx.Owner.EncodeBinary},
		{name: "Admin", decode: tx.Admin.DecodeBinary, encode: tx.Admin.EncodeBinary},
	}
}
