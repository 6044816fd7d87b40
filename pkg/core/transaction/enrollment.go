package transaction

import (
	"github.com/nspcc-dev/walletkit/pkg/crypto/keys"
)

// EnrollmentTX transaction represents an enrollment form, which indicates
// that the sponsor of the transaction would like to sign up as a validator.
// The way to sign up is: To construct an EnrollmentTransaction type of transaction,
// and send a deposit to the address of the PublicKey.
// The way to cancel the registration is: Spend the deposit on the address of the PublicKey.
type EnrollmentTX struct {
	// PublicKey of the validator.
	PublicKey keys.PublicKey `json:"pubkey"`
}

// Type implements the Data interface.
func (tx *EnrollmentTX) Type() TXType { return EnrollmentType }

func (tx *EnrollmentTX) fields() []field {
	return []field{
		{name: "PublicKey", decode: tx.PublicKey.DecodeBinary, encode: tx.PublicKey.EncodeBinary},
	}
}
