package transaction

// ContractTX represents a contract transaction.
// This TX has no special attributes.
type ContractTX struct{}

// Type implements the Data interface.
func (tx *ContractTX) Type() TXType { return ContractType }

func (tx *ContractTX) fields() []field { return nil }
