package transaction

import (
	"fmt"
	"reflect"
)

// Data is the part of a transaction specific to its type. The set of
// implementations is closed, every one of them is listed in registry.
type Data interface {
	// Type returns the transaction type this data belongs to.
	Type() TXType
	fields() []field
}

type variant struct {
	new        func() Data
	maxVersion uint8
}

var registry = map[TXType]variant{
	MinerType:      {func() Data { return new(MinerTX) }, 0},
	IssueType:      {func() Data { return new(IssueTX) }, 1},
	ClaimType:      {func() Data { return new(ClaimTX) }, 0},
	EnrollmentType: {func() Data { return new(EnrollmentTX) }, 0},
	RegisterType:   {func() Data { return new(RegisterTX) }, 0},
	ContractType:   {func() Data { return new(ContractTX) }, 0},
	StateType:      {func() Data { return new(StateTX) }, 0},
	PublishType:    {func() Data { return new(PublishTX) }, 1},
	InvocationType: {func() Data { return new(InvocationTX) }, 1},
}

func lookup(t TXType, version uint8) (variant, error) {
	v, ok := registry[t]
	if !ok {
		return v, &UnknownTypeError{Type: t}
	}
	if version > v.maxVersion {
		return v, fmt.Errorf("%w: %d for %s (max %d)", ErrUnsupportedVersion, version, t, v.maxVersion)
	}
	return v, nil
}

// MaxVersion returns the highest version supported by the given type.
func MaxVersion(t TXType) (uint8, error) {
	v, ok := registry[t]
	if !ok {
		return 0, &UnknownTypeError{Type: t}
	}
	return v.maxVersion, nil
}

func dataName(d Data) string {
	return reflect.TypeOf(d).Elem().Name()
}
