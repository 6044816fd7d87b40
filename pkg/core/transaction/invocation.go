package transaction

import (
	"github.com/nspcc-dev/walletkit/pkg/io"
)

// MaxScriptLength is the limit for transaction's script length.
const MaxScriptLength = 65536

// InvocationTX represents a invocation transaction and is used to
// deploy smart contract to the NEO blockchain.
type InvocationTX struct {
	// Script output of the smart contract.
	Script []byte `json:"script"`

	// Gas cost of the smart contract. Present since version 1.
	Gas uint64 `json:"gas"`
}

// NewInvocationTX returns a new invocation transaction.
func NewInvocationTX(script []byte, gas uint64) *Transaction {
	return &Transaction{
		Type:    InvocationType,
		Version: 1,
		Data: &InvocationTX{
			Script: script,
			Gas:    gas,
		},
		Attributes: []Attribute{},
		Scripts:    []Witness{},
	}
}

// Type implements the Data interface.
func (tx *InvocationTX) Type() TXType { return InvocationType }

func (tx *InvocationTX) fields() []field {
	return []field{
		{name: "Script", decode: func(r *io.BinReader) { tx.Script = r.ReadVarBytes(MaxScriptLength) }, encode: func(w *io.BinWriter) { w.WriteVarBytes(tx.Script, MaxScriptLength) }},
		{name: "Gas", since: 1, decode: func(r *io.BinReader) { tx.Gas = r.ReadU64LE() }, encode: func(w *io.BinWriter) { w.WriteU64LE(tx.Gas) }},
	}
}
