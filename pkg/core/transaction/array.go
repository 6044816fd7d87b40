package transaction

import (
	"fmt"

	"github.com/nspcc-dev/walletkit/pkg/io"
)

// decodeArray reads a counted array of serializable elements. Element
// failures are reported as FieldError with an "[i]" path.
func decodeArray[T any, PT interface {
	*T
	io.Serializable
}](r *io.BinReader, maxSize int) []T {
	n := r.ReadArrayLen(maxSize)
	if r.Err != nil {
		return nil
	}
	arr := make([]T, 0, min(n, 16))
	for i := 0; i < n; i++ {
		var el T
		PT(&el).DecodeBinary(r)
		if r.Err != nil {
			r.Err = withField(fmt.Sprintf("[%d]", i), r.Err)
			return nil
		}
		arr = append(arr, el)
	}
	return arr
}
