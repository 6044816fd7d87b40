package io

// Serializable defines the binary encoding/decoding interface. Errors are
// returned through the appropriate fields of BinReader and BinWriter.
type Serializable interface {
	DecodeBinary(*BinReader)
	EncodeBinary(*BinWriter)
}

type encodable interface {
	EncodeBinary(*BinWriter)
}
