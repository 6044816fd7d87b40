package fixedn

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/nspcc-dev/walletkit/pkg/io"
)

const (
	precision = 8
	decimals  = 100000000
)

var errInvalidString = errors.New("fixed point number must have a maximum of 8 digits after the decimal point")

// Fixed8 represents a fixed-point number with precision 10^-8.
type Fixed8 int64

// String implements the Stringer interface.
func (f Fixed8) String() string {
	buf := new(strings.Builder)
	val := int64(f)
	if val < 0 {
		buf.WriteRune('-')
		val = -val
	}
	str := strconv.FormatInt(val/decimals, 10)
	buf.WriteString(str)
	val %= decimals
	if val > 0 {
		buf.WriteRune('.')
		str = strconv.FormatInt(val, 10)
		for i := len(str); i < 8; i++ {
			buf.WriteRune('0')
		}
		buf.WriteString(strings.TrimRight(str, "0"))
	}
	return buf.String()
}

// IntegralValue returns an integer part of the original value representing
// Fixed8 as int64.
func (f Fixed8) IntegralValue() int64 {
	return int64(f) / decimals
}

// FractionalValue returns a decimal part of the original value. It has the same
// sign as f, so that f = f.IntegralValue() + f.FractionalValue().
func (f Fixed8) FractionalValue() int32 {
	return int32(int64(f) % decimals)
}

// Fixed8FromInt64 returns a new Fixed8 type multiplied by decimals.
func Fixed8FromInt64(val int64) Fixed8 {
	return Fixed8(decimals * val)
}

// Fixed8FromString parses s which must be a fixed point number
// with precision up to 10^-8.
func Fixed8FromString(s string) (Fixed8, error) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	ip, fp, _ := strings.Cut(s, ".")
	if len(fp) > precision {
		return 0, errInvalidString
	}
	if ip == "" && fp == "" {
		return 0, strconv.ErrSyntax
	}
	var (
		i, d uint64
		err  error
	)
	if ip != "" {
		if i, err = strconv.ParseUint(ip, 10, 64); err != nil {
			return 0, err
		}
	}
	if fp != "" {
		fp += strings.Repeat("0", precision-len(fp))
		if d, err = strconv.ParseUint(fp, 10, 64); err != nil {
			return 0, err
		}
	}
	if i > math.MaxInt64/decimals {
		return 0, strconv.ErrRange
	}
	v := int64(i*decimals + d)
	if v < 0 {
		return 0, strconv.ErrRange
	}
	if neg {
		v = -v
	}
	return Fixed8(v), nil
}

// UnmarshalYAML implements the yaml unmarshaler interface.
func (f *Fixed8) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	err := unmarshal(&s)
	if err != nil {
		return err
	}
	p, err := Fixed8FromString(s)
	if err != nil {
		return err
	}
	*f = p
	return nil
}

// MarshalJSON implements the json marshaller interface.
func (f Fixed8) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// DecodeBinary implements the io.Serializable interface.
func (f *Fixed8) DecodeBinary(r *io.BinReader) {
	*f = Fixed8(r.ReadU64LE())
}

// EncodeBinary implements the io.Serializable interface.
func (f *Fixed8) EncodeBinary(w *io.BinWriter) {
	w.WriteU64LE(uint64(*f))
}
