package bridge

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/protobuf/encoding/protowire"
)

// ErrParse is returned for request blobs that can't be parsed.
var ErrParse = errors.New("failed to parse request")

// AccountInput is a request for a counterfactual account address.
//
//	message AccountInput {
//	    string factory = 1;
//	    bytes owner = 2;
//	    string implementation = 3;
//	}
type AccountInput struct {
	Factory        string
	Owner          []byte
	Implementation string
}

// BarzInput is a request for a Barz account address.
//
//	message BarzInput {
//	    string entry_point = 1;
//	    string factory = 2;
//	    string account_facet = 3;
//	    string verification_facet = 4;
//	    string facet_registry = 5;
//	    string default_fallback = 6;
//	    string bytecode = 7;
//	    string public_key = 8;
//	    uint32 salt = 9;
//	}
type BarzInput struct {
	EntryPoint        string
	Factory           string
	AccountFacet      string
	VerificationFacet string
	FacetRegistry     string
	DefaultFallback   string
	Bytecode          string
	PublicKey         string
	Salt              uint32
}

// Marshal encodes the message in protobuf wire format.
func (in *AccountInput) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, in.Factory)
	if len(in.Owner) != 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, in.Owner)
	}
	return appendString(b, 3, in.Implementation)
}

// Unmarshal decodes the message from protobuf wire format. Unknown fields
// are skipped.
func (in *AccountInput) Unmarshal(b []byte) error {
	*in = AccountInput{}
	return walk(b, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return setString(&in.Factory, typ, v)
		case 2:
			if typ != protowire.BytesType {
				return wrongType(num, typ)
			}
			in.Owner = append([]byte(nil), v...)
		case 3:
			return setString(&in.Implementation, typ, v)
		}
		return nil
	})
}

// Marshal encodes the message in protobuf wire format.
func (in *BarzInput) Marshal() []byte {
	var b []byte
	for i, s := range in.strings() {
		b = appendString(b, protowire.Number(i+1), *s)
	}
	if in.Salt != 0 {
		b = protowire.AppendTag(b, 9, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(in.Salt))
	}
	return b
}

// Unmarshal decodes the message from protobuf wire format. Unknown fields
// are skipped.
func (in *BarzInput) Unmarshal(b []byte) error {
	*in = BarzInput{}
	fields := in.strings()
	return walk(b, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch {
		case num >= 1 && int(num) <= len(fields):
			return setString(fields[num-1], typ, v)
		case num == 9:
			if typ != protowire.VarintType {
				return wrongType(num, typ)
			}
			in.Salt = uint32(x)
		}
		return nil
	})
}

func (in *BarzInput) strings() []*string {
	return []*string{&in.EntryPoint, &in.Factory, &in.AccountFacet, &in.VerificationFacet,
		&in.FacetRegistry, &in.DefaultFallback, &in.Bytecode, &in.PublicKey}
}

// walk calls f for every field of the message. v is set for length-delimited
// fields, x for varints.
func walk(b []byte, f func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %w", ErrParse, protowire.ParseError(n))
		}
		b = b[n:]
		var (
			v []byte
			x uint64
		)
		switch typ {
		case protowire.BytesType:
			v, n = protowire.ConsumeBytes(b)
		case protowire.VarintType:
			x, n = protowire.ConsumeVarint(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %w", ErrParse, num, protowire.ParseError(n))
		}
		b = b[n:]
		if err := f(num, typ, v, x); err != nil {
			return err
		}
	}
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func setString(dst *string, typ protowire.Type, v []byte) error {
	if typ != protowire.BytesType {
		return fmt.Errorf("%w: string field has wire type %d", ErrParse, typ)
	}
	if !utf8.Valid(v) {
		return fmt.Errorf("%w: string field contains invalid UTF-8", ErrParse)
	}
	*dst = string(v)
	return nil
}

func wrongType(num protowire.Number, typ protowire.Type) error {
	return fmt.Errorf("%w: field %d has wire type %d", ErrParse, num, typ)
}

func parseAddress(name, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: invalid %s address %q", ErrParse, name, s)
	}
	return common.HexToAddress(s), nil
}

func parseHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s: %w", ErrParse, name, err)
	}
	return b, nil
}
