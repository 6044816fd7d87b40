package transaction

// IssueTX represents an issue transaction.
// This TX has no special attributes.
type IssueTX struct{}

// Type implements the Data interface.
func (tx *IssueTX) Type() TXType { return IssueType }

func (tx *IssueTX) fields() []field { return nil }
