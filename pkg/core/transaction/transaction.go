package transaction

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nspcc-dev/walletkit/pkg/crypto/hash"
	"github.com/nspcc-dev/walletkit/pkg/io"
	"github.com/nspcc-dev/walletkit/pkg/util"
)

// Transaction is a process recorded in the NEO blockchain.
type Transaction struct {
	// The type of the transaction.
	Type TXType

	// The trading version which is currently 0.
	Version uint8

	// Data specific to the type of the transaction.
	// This is always a pointer to a <Type>TX.
	Data Data

	// Transaction attributes.
	Attributes []Attribute

	// The scripts that comes with this transaction.
	// Scripts exist out of the verification script
	// and invocation script.
	Scripts []Witness
}

// NewTransactionFromBytes decodes byte array into *Transaction. The whole
// buffer must be consumed.
func NewTransactionFromBytes(b []byte) (*Transaction, error) {
	tx := &Transaction{}
	r := io.NewBinReaderFromBuf(b)
	tx.DecodeBinary(r)
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
	return tx, nil
}

// DecodeBinary implements Serializable interface.
func (t *Transaction) DecodeBinary(br *io.BinReader) {
	t.Type = TXType(br.ReadB())
	t.Version = br.ReadB()
	if br.Err != nil {
		return
	}
	v, err := lookup(t.Type, t.Version)
	if err != nil {
		br.Err = err
		return
	}
	t.Attributes = decodeArray[Attribute](br, MaxAttributes)
	if br.Err != nil {
		if errors.Is(br.Err, io.ErrTooBig) && !errors.Is(br.Err, ErrMalformedAttribute) {
			br.Err = fmt.Errorf("%w: %w", ErrMalformedAttribute, br.Err)
		}
		br.Err = withField("attributes", br.Err)
		return
	}
	t.Scripts = decodeArray[Witness](br, io.MaxArraySize)
	if br.Err != nil {
		br.Err = withField("scripts", br.Err)
		return
	}
	t.Data = v.new()
	decodeFields(br, t.Data, t.Version)
}

// EncodeBinary implements Serializable interface.
func (t *Transaction) EncodeBinary(bw *io.BinWriter) {
	if bw.Err != nil {
		return
	}
	if err := t.check(); err != nil {
		bw.Err = err
		return
	}
	t.encodeSignedHeader(bw)
	io.WriteArray(bw, t.Scripts)
	encodeFields(bw, t.Data, t.Version)
}

// check ensures the transaction can be encoded: its type is known, its
// version is supported and its data belongs to the type.
func (t *Transaction) check() error {
	if _, err := lookup(t.Type, t.Version); err != nil {
		return err
	}
	if t.Data == nil || t.Data.Type() != t.Type {
		return fmt.Errorf("%w: %s", ErrDataMismatch, t.Type)
	}
	if len(t.Attributes) > MaxAttributes {
		return fmt.Errorf("%w: %d attributes", ErrMalformedAttribute, len(t.Attributes))
	}
	return nil
}

func (t *Transaction) encodeSignedHeader(bw *io.BinWriter) {
	bw.WriteB(byte(t.Type))
	bw.WriteB(t.Version)
	io.WriteArray(bw, t.Attributes)
}

// Bytes converts the transaction to []byte.
func (t *Transaction) Bytes() ([]byte, error) {
	buf := io.NewBufBinWriter()
	t.EncodeBinary(buf.BinWriter)
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Bytes(), nil
}

// GetSignedPart returns a hashable part of the transaction which excludes
// its witnesses.
func (t *Transaction) GetSignedPart() ([]byte, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	buf := io.NewBufBinWriter()
	t.encodeSignedHeader(buf.BinWriter)
	encodeFields(buf.BinWriter, t.Data, t.Version)
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Bytes(), nil
}

// Hash returns the hash of the transaction's signed part.
func (t *Transaction) Hash() (util.Uint256, error) {
	b, err := t.GetSignedPart()
	if err != nil {
		return util.Uint256{}, err
	}
	return hash.DoubleSha256(b), nil
}

// Equals compares two transactions field by field including their
// exclusive data.
func (t *Transaction) Equals(other *Transaction) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Type != other.Type || t.Version != other.Version {
		return false
	}
	if len(t.Attributes) != len(other.Attributes) || len(t.Scripts) != len(other.Scripts) {
		return false
	}
	for i := range t.Attributes {
		if !t.Attributes[i].Equals(other.Attributes[i]) {
			return false
		}
	}
	for i := range t.Scripts {
		if !t.Scripts[i].Equals(other.Scripts[i]) {
			return false
		}
	}
	return equalData(t.Data, other.Data)
}

// transactionJSON is a wrapper for Transaction and
// used for correct marhalling of transaction.Data.
type transactionJSON struct {
	TxID       util.Uint256 `json:"txid"`
	Size       int          `json:"size"`
	Type       TXType       `json:"type"`
	Version    uint8        `json:"version"`
	Attributes []Attribute  `json:"attributes"`
	Scripts    []Witness    `json:"scripts"`
	Data       Data         `json:"data,omitempty"`
}

// MarshalJSON implements json.Marshaler interface.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	b, err := t.Bytes()
	if err != nil {
		return nil, err
	}
	id, err := t.Hash()
	if err != nil {
		return nil, err
	}
	tx := transactionJSON{
		TxID:       id,
		Size:       len(b),
		Type:       t.Type,
		Version:    t.Version,
		Attributes: t.Attributes,
		Scripts:    t.Scripts,
		Data:       t.Data,
	}
	if len(t.Data.fields()) == 0 {
		tx.Data = nil
	}
	return json.Marshal(tx)
}
