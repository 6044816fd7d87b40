package transaction

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/nspcc-dev/walletkit/pkg/io"
)

const (
	// MaxAttributes is the maximum number of attributes a transaction
	// can carry.
	MaxAttributes = 16
	// MaxAttributeDataSize is the maximum length of variable-sized
	// attribute data.
	MaxAttributeDataSize = math.MaxUint16
)

// Attribute represents a Transaction attribute.
type Attribute struct {
	Usage AttrUsage
	Data  []byte
}

// attrShape describes how data of the given usage is laid out: either a
// fixed width or a length prefix of a particular kind.
type attrShape struct {
	fixed int
	// shortPrefix is a one-byte length, otherwise varint.
	shortPrefix bool
	maxSize     int
}

func shapeOf(u AttrUsage) (attrShape, error) {
	switch {
	case u == ContractHash || u == Vote || (u >= Hash1 && u <= Hash15):
		return attrShape{fixed: 32}, nil
	case u == ECDH02 || u == ECDH03:
		return attrShape{fixed: 32}, nil
	case u == Script:
		return attrShape{fixed: 20}, nil
	case u == DescriptionURL:
		return attrShape{shortPrefix: true, maxSize: math.MaxUint8}, nil
	case u == Description || u >= Remark:
		return attrShape{maxSize: MaxAttributeDataSize}, nil
	default:
		return attrShape{}, fmt.Errorf("%w: unknown usage 0x%02x", ErrMalformedAttribute, byte(u))
	}
}

// isECDH returns true for usages storing the public key prefix as the
// usage byte.
func (u AttrUsage) isECDH() bool {
	return u == ECDH02 || u == ECDH03
}

// DecodeBinary implements the io.Serializable interface.
func (attr *Attribute) DecodeBinary(br *io.BinReader) {
	attr.Usage = AttrUsage(br.ReadB())
	if br.Err != nil {
		return
	}
	shape, err := shapeOf(attr.Usage)
	if err != nil {
		br.Err = err
		return
	}
	switch {
	case attr.Usage.isECDH():
		attr.Data = make([]byte, shape.fixed+1)
		attr.Data[0] = byte(attr.Usage)
		br.ReadBytes(attr.Data[1:])
	case shape.fixed != 0:
		attr.Data = make([]byte, shape.fixed)
		br.ReadBytes(attr.Data)
	case shape.shortPrefix:
		attr.Data = make([]byte, br.ReadB())
		br.ReadBytes(attr.Data)
	default:
		attr.Data = br.ReadVarBytes(shape.maxSize)
		if errors.Is(br.Err, io.ErrTooBig) {
			br.Err = fmt.Errorf("%w: %w", ErrMalformedAttribute, br.Err)
		}
	}
}

// EncodeBinary implements the io.Serializable interface.
func (attr *Attribute) EncodeBinary(bw *io.BinWriter) {
	if bw.Err != nil {
		return
	}
	if err := attr.validate(); err != nil {
		bw.Err = err
		return
	}
	bw.WriteB(byte(attr.Usage))
	shape, _ := shapeOf(attr.Usage)
	switch {
	case attr.Usage.isECDH():
		bw.WriteBytes(attr.Data[1:])
	case shape.fixed != 0:
		bw.WriteBytes(attr.Data)
	case shape.shortPrefix:
		bw.WriteB(byte(len(attr.Data)))
		bw.WriteBytes(attr.Data)
	default:
		bw.WriteVarBytes(attr.Data)
	}
}

// validate checks that Data matches the layout required by Usage.
func (attr *Attribute) validate() error {
	shape, err := shapeOf(attr.Usage)
	if err != nil {
		return err
	}
	switch {
	case attr.Usage.isECDH():
		if len(attr.Data) != shape.fixed+1 || attr.Data[0] != byte(attr.Usage) {
			return fmt.Errorf("%w: %s data must be a compressed key with 0x%02x prefix", ErrMalformedAttribute, attr.Usage, byte(attr.Usage))
		}
	case shape.fixed != 0:
		if len(attr.Data) != shape.fixed {
			return fmt.Errorf("%w: %s data must be %d bytes, got %d", ErrMalformedAttribute, attr.Usage, shape.fixed, len(attr.Data))
		}
	case len(attr.Data) > shape.maxSize:
		return fmt.Errorf("%w: %s data is too long (%d)", ErrMalformedAttribute, attr.Usage, len(attr.Data))
	}
	return nil
}

// Equals returns true if both attributes have the same usage and data.
func (attr Attribute) Equals(other Attribute) bool {
	return attr.Usage == other.Usage && bytes.Equal(attr.Data, other.Data)
}

// MarshalJSON implements the json Marschaller interface.
func (attr *Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"usage": attr.Usage.String(),
		"data":  hex.EncodeToString(attr.Data),
	})
}
