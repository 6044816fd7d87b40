package transaction

import "github.com/nspcc-dev/walletkit/pkg/io"

// MinerTX represents a miner transaction.
type MinerTX struct {
	// Random number to avoid hash collision.
	Nonce uint32 `json:"nonce"`
}

// Type implements the Data interface.
func (tx *MinerTX) Type() TXType { return MinerType }

func (tx *MinerTX) fields() []field {
	return []field{
		{name: "Nonce", decode: func(r *io.BinReader) { tx.Nonce = r.ReadU32LE() }, encode: func(w *io.BinWriter) { w.WriteU32LE(tx.Nonce) }},
	}
}
