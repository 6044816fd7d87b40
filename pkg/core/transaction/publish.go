package transaction

import (
	"github.com/nspcc-dev/walletkit/pkg/io"
)

const (
	maxParamList   = 252
	maxPublishText = 252
	maxPublishDesc = 65536
)

// PublishTX represents a publish transaction.
// NOTE: This is deprecated and should no longer be used.
type PublishTX struct {
	Script      []byte      `json:"script"`
	ParamList   []ParamType `json:"parameters"`
	ReturnType  ParamType   `json:"returntype"`
	NeedStorage bool        `json:"needstorage"`
	Name        string      `json:"name"`
	CodeVersion string      `json:"version"`
	Author      string      `json:"author"`
	Email       string      `json:"email"`
	Description string      `json:"description"`
}

// Type implements the Data interface.
func (tx *PublishTX) Type() TXType { return PublishType }

func (tx *PublishTX) fields() []field {
	str := func(name string, s *string, maxSize int) field {
		return field{
			name:   name,
			decode: func(r *io.BinReader) { *s = r.ReadString(maxSize) },
			encode: func(w *io.BinWriter) { w.WriteString(*s, maxSize) },
		}
	}
	return []field{
		{name: "Script", decode: func(r *io.BinReader) { tx.Script = r.ReadVarBytes(MaxScriptLength) }, encode: func(w *io.BinWriter) { w.WriteVarBytes(tx.Script, MaxScriptLength) }},
		{name: "ParamList", decode: tx.decodeParams, encode: tx.encodeParams},
		{name: "ReturnType", decode: func(r *io.BinReader) { tx.ReturnType = ParamType(r.ReadB()) }, encode: func(w *io.BinWriter) { w.WriteB(byte(tx.ReturnType)) }},
		{name: "NeedStorage", since: 1, decode: func(r *io.BinReader) { tx.NeedStorage = r.ReadBool() }, encode: func(w *io.BinWriter) { w.WriteBool(tx.NeedStorage) }},
		str("Name", &tx.Name, maxPublishText),
		str("CodeVersion", &tx.CodeVersion, maxPublishText),
		str("Author", &tx.Author, maxPublishText),
		str("Email", &tx.Email, maxPublishText),
		str("Description", &tx.Description, maxPublishDesc),
	}
}

func (tx *PublishTX) decodeParams(r *io.BinReader) {
	b := r.ReadVarBytes(maxParamList)
	if r.Err != nil {
		return
	}
	tx.ParamList = make([]ParamType, len(b))
	for i := range b {
		tx.ParamList[i] = ParamType(b[i])
	}
}

func (tx *PublishTX) encodeParams(w *io.BinWriter) {
	b := make([]byte, len(tx.ParamList))
	for i := range tx.ParamList {
		b[i] = byte(tx.ParamList[i])
	}
	w.WriteVarBytes(b, maxParamList)
}
