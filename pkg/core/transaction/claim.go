package transaction

import (
	"github.com/nspcc-dev/walletkit/pkg/io"
)

// MaxClaims is the maximum number of inputs claimed by a single ClaimTX.
const MaxClaims = 0xffff

// ClaimTX represents a claim transaction.
type ClaimTX struct {
	Claims []Input `json:"claims"`
}

// Type implements the Data interface.
func (tx *ClaimTX) Type() TXType { return ClaimType }

func (tx *ClaimTX) fields() []field {
	return []field{
		{
			name:   "Claims",
			decode: func(r *io.BinReader) { tx.Claims = decodeArray[Input](r, MaxClaims) },
			encode: func(w *io.BinWriter) { io.WriteArray(w, tx.Claims, MaxClaims) },
		},
	}
}
