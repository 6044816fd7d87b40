package fixedn

import (
	"testing"

	"github.com/nspcc-dev/walletkit/internal/testserdes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFixed8FromInt64(t *testing.T) {
	values := []int64{9000, 100000000, 5, 10945, -42}

	for _, val := range values {
		assert.Equal(t, Fixed8(val*decimals), Fixed8FromInt64(val))
		assert.Equal(t, val, Fixed8FromInt64(val).IntegralValue())
		assert.Equal(t, int32(0), Fixed8FromInt64(val).FractionalValue())
	}
}

func TestFixed8FromString(t *testing.T) {
	// Fixed8FromString works correctly with integers
	ivalues := []string{"9000", "100000000", "5", "10945", "20.45", "0.00000001", "-42"}
	for _, val := range ivalues {
		n, err := Fixed8FromString(val)
		require.NoError(t, err)
		assert.Equal(t, val, n.String())
	}

	// Fixed8FromString parses number with maximal precision
	val := "123456789.12345678"
	n, err := Fixed8FromString(val)
	require.NoError(t, err)
	assert.Equal(t, Fixed8(12345678912345678), n)

	// Fixed8FromString parses number with non-maximal precision
	val = "901.2341"
	n, err = Fixed8FromString(val)
	require.NoError(t, err)
	assert.Equal(t, Fixed8(90123410000), n)
	assert.Equal(t, int64(901), n.IntegralValue())
	assert.Equal(t, int32(23410000), n.FractionalValue())

	for _, bad := range []string{"", ".", "1.000000001", "abc", "1.a", "100000000000000000000"} {
		_, err = Fixed8FromString(bad)
		assert.Error(t, err, bad)
	}
}

func TestFixed8YAML(t *testing.T) {
	var f Fixed8
	require.NoError(t, yaml.Unmarshal([]byte(`"1.5"`), &f))
	require.Equal(t, Fixed8(150000000), f)
	require.Error(t, yaml.Unmarshal([]byte(`"x"`), &f))
}

func TestFixed8JSON(t *testing.T) {
	js, err := Fixed8(150000000).MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"1.5"`, string(js))
}

func TestFixed8Binary(t *testing.T) {
	f := Fixed8(-1)
	testserdes.EncodeDecodeBinary(t, &f, new(Fixed8))
}
