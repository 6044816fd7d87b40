package transaction

import (
	"github.com/nspcc-dev/walletkit/pkg/io"
)

// MaxDescriptors is the maximum number of descriptors in a StateTX.
const MaxDescriptors = 16

// StateTX represents a state transaction.
type StateTX struct {
	Descriptors []StateDescriptor `json:"descriptors"`
}

// Type implements the Data interface.
func (tx *StateTX) Type() TXType { return StateType }

func (tx *StateTX) fields() []field {
	return []field{
		{
			name:   "Descriptors",
			decode: func(r *io.BinReader) { tx.Descriptors = decodeArray[StateDescriptor](r, MaxDescriptors) },
			encode: func(w *io.BinWriter) { io.WriteArray(w, tx.Descriptors, MaxDescriptors) },
		},
	}
}
