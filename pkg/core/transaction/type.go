package transaction

import "encoding/json"

// TXType is the type of a transaction.
type TXType uint8

// All processes in NEO system are recorded in transactions.
// There are several types of transactions.
const (
	MinerType      TXType = 0x00
	IssueType      TXType = 0x01
	ClaimType      TXType = 0x02
	EnrollmentType TXType = 0x20
	RegisterType   TXType = 0x40
	ContractType   TXType = 0x80
	StateType      TXType = 0x90
	PublishType    TXType = 0xd0
	InvocationType TXType = 0xd1
)

// String implements the stringer interface.
func (t TXType) String() string {
	switch t {
	case MinerType:
		return "MinerTransaction"
	case IssueType:
		return "IssueTransaction"
	case ClaimType:
		return "ClaimTransaction"
	case EnrollmentType:
		return "EnrollmentTransaction"
	case RegisterType:
		return "RegisterTransaction"
	case ContractType:
		return "ContractTransaction"
	case StateType:
		return "StateTransaction"
	case PublishType:
		return "PublishTransaction"
	case InvocationType:
		return "InvocationTransaction"
	default:
		return "UnknownTransaction"
	}
}

// MarshalJSON implements the json marshalller interface.
func (t TXType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// TXTypeFromString searches for TXType by string name.
func TXTypeFromString(jsonString string) (TXType, error) {
	for t := range registry {
		if t.String() == jsonString {
			return t, nil
		}
	}
	return 0, ErrUnknownType
}
