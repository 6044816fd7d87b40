package io

import (
	"fmt"
	"reflect"
)

// GetVarIntSize returns the size in number of bytes of a variable integer.
func GetVarIntSize(value int) int {
	var pre [9]byte
	return PutVarUint(pre[:], uint64(value))
}

// GetVarStringSize returns the size of a variable string.
func GetVarStringSize(value string) int {
	return GetVarIntSize(len(value)) + len(value)
}

// GetVarSize returns the encoded size of a length-prefixed value: a string,
// a slice of fixed-size integers or a slice of Serializable elements.
// Integer values are sized as varints.
func GetVarSize(value any) int {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return GetVarStringSize(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return GetVarIntSize(int(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return GetVarIntSize(int(v.Uint()))
	case reflect.Slice, reflect.Array:
		n := v.Len()
		size := 0
		switch el := v.Type().Elem(); {
		case el.Kind() >= reflect.Int && el.Kind() <= reflect.Uint64 && el.Kind() != reflect.Int && el.Kind() != reflect.Uint:
			size = n * int(el.Size())
		case reflect.PointerTo(el).Implements(reflect.TypeOf((*encodable)(nil)).Elem()):
			for i := 0; i < n; i++ {
				size += sizeOf(v.Index(i))
			}
		default:
			panic(fmt.Sprintf("unable to calculate GetVarSize, %s", v.Type()))
		}
		return GetVarIntSize(n) + size
	default:
		panic(fmt.Sprintf("unable to calculate GetVarSize, %s", reflect.TypeOf(value)))
	}
}

func sizeOf(v reflect.Value) int {
	var e encodable
	if v.CanAddr() {
		e = v.Addr().Interface().(encodable)
	} else {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		e = p.Interface().(encodable)
	}
	c := &counter{}
	w := NewBinWriterFromIO(c)
	e.EncodeBinary(w)
	return c.n
}

type counter struct {
	n int
}

func (c *counter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}
