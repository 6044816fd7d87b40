package transaction

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nspcc-dev/walletkit/pkg/io"
)

// DescStateType represents the type of StateDescriptor.
type DescStateType uint8

// Valid DescStateType constants.
const (
	Account   DescStateType = 0x40
	Validator DescStateType = 0x48
)

const (
	maxDescriptorKey   = 100
	maxDescriptorField = 32
	maxDescriptorValue = 65535
)

// StateDescriptor ..
type StateDescriptor struct {
	Type  DescStateType
	Key   []byte
	Value []byte
	Field string
}

// ErrInvalidDescriptorType is returned for state descriptor types other
// than Account and Validator.
var ErrInvalidDescriptorType = errors.New("invalid state descriptor type")

func (t DescStateType) valid() bool {
	return t == Account || t == Validator
}

// DecodeBinary implements Serializable interface.
func (s *StateDescriptor) DecodeBinary(r *io.BinReader) {
	s.Type = DescStateType(r.ReadB())
	if r.Err == nil && !s.Type.valid() {
		r.Err = fmt.Errorf("%w: 0x%02x", ErrInvalidDescriptorType, byte(s.Type))
		return
	}
	s.Key = r.ReadVarBytes(maxDescriptorKey)
	s.Field = r.ReadString(maxDescriptorField)
	s.Value = r.ReadVarBytes(maxDescriptorValue)
}

// EncodeBinary implements Serializable interface.
func (s *StateDescriptor) EncodeBinary(w *io.BinWriter) {
	if w.Err != nil {
		return
	}
	if !s.Type.valid() {
		w.Err = fmt.Errorf("%w: 0x%02x", ErrInvalidDescriptorType, byte(s.Type))
		return
	}
	w.WriteB(byte(s.Type))
	w.WriteVarBytes(s.Key, maxDescriptorKey)
	w.WriteString(s.Field, maxDescriptorField)
	w.WriteVarBytes(s.Value, maxDescriptorValue)
}

// MarshalJSON implements the json marshaller interface.
func (s *StateDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  byte(s.Type),
		"key":   hex.EncodeToString(s.Key),
		"field": s.Field,
		"value": hex.EncodeToString(s.Value),
	})
}
