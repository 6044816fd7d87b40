package transaction

import (
	"bytes"
	"math"

	"github.com/nspcc-dev/walletkit/pkg/io"
)

// field is a single exclusive data field. Both directions of the codec and
// the equality check go through the same declaration, so presence of a
// field can't differ between them.
type field struct {
	name string
	// since is the minimal transaction version the field is present at.
	since  uint8
	decode func(*io.BinReader)
	encode func(*io.BinWriter)
}

func (f field) presentAt(version uint8) bool {
	return version >= f.since
}

func decodeFields(r *io.BinReader, d Data, version uint8) {
	for _, f := range d.fields() {
		if r.Err != nil {
			return
		}
		if !f.presentAt(version) {
			continue
		}
		f.decode(r)
		if r.Err != nil {
			r.Err = withField(dataName(d), withField(f.name, r.Err))
		}
	}
}

func encodeFields(w *io.BinWriter, d Data, version uint8) {
	for _, f := range d.fields() {
		if w.Err != nil {
			return
		}
		if f.presentAt(version) {
			f.encode(w)
		}
	}
}

// equalData compares every declared field of a and b by its encoding
// regardless of version.
func equalData(a, b Data) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	fa, fb := a.fields(), b.fields()
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		wa, wb := io.NewBufBinWriter(), io.NewBufBinWriter()
		fa[i].encode(wa.BinWriter)
		fb[i].encode(wb.BinWriter)
		if wa.Err != nil || wb.Err != nil || !bytes.Equal(wa.Bytes(), wb.Bytes()) {
			return false
		}
	}
	return true
}

// maxVersion is used to expose all declared fields at once.
const maxVersion = math.MaxUint8
