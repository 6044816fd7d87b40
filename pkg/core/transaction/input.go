package transaction

import (
	"github.com/nspcc-dev/walletkit/pkg/io"
	"github.com/nspcc-dev/walletkit/pkg/util"
)

// Input represents a Transaction input (CoinReference).
type Input struct {
	// The hash of the previous transaction.
	PrevHash util.Uint256 `json:"txid"`

	// The index of the previous transaction.
	PrevIndex uint16 `json:"vout"`
}

// DecodeBinary implements Serializable interface.
func (in *Input) DecodeBinary(br *io.BinReader) {
	in.PrevHash.DecodeBinary(br)
	in.PrevIndex = br.ReadU16LE()
}

// EncodeBinary implements Serializable interface.
func (in *Input) EncodeBinary(bw *io.BinWriter) {
	in.PrevHash.EncodeBinary(bw)
	bw.WriteU16LE(in.PrevIndex)
}
