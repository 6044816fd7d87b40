package main

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/nspcc-dev/walletkit/pkg/core/transaction"
	"github.com/stretchr/testify/require"
)

func TestTxEncode(t *testing.T) {
	e := newExecutor(t)

	t.Run("empty invocation", func(t *testing.T) {
		e.Run(t, "walletkit", "tx", "encode")
		e.checkNextLine(t, "^d1010000000000000000000000$")
		e.checkEOF(t)
	})
	t.Run("invocation with gas", func(t *testing.T) {
		e.Run(t, "walletkit", "tx", "encode", "--script", "51", "--gas", "0.00000002")
		e.checkNextLine(t, "^d101000001510200000000000000$")
	})
	t.Run("version 0", func(t *testing.T) {
		e.Run(t, "walletkit", "tx", "encode", "--version", "0", "--script", "51", "--gas", "1")
		e.checkNextLine(t, "^d10000000151$")
	})
	t.Run("miner", func(t *testing.T) {
		e.Run(t, "walletkit", "tx", "encode", "--type", "MinerTransaction", "--nonce", "1")
		e.checkNextLine(t, "^0000000001000000$")

		e.Run(t, "walletkit", "tx", "encode", "--type", "MinerTransaction", "--nonce", "4294967295")
		e.checkNextLine(t, "^00000000ffffffff$")
	})
	t.Run("tag", func(t *testing.T) {
		e.Run(t, "walletkit", "tx", "encode", "--type", "80")
		e.checkNextLine(t, "^80000000$")
	})
	t.Run("errors", func(t *testing.T) {
		e.RunWithError(t, "walletkit", "tx", "encode", "--type", "Foo")
		e.RunWithError(t, "walletkit", "tx", "encode", "--type", "33")
		e.RunWithError(t, "walletkit", "tx", "encode", "--type", "RegisterTransaction")
		e.RunWithError(t, "walletkit", "tx", "encode", "--version", "2")
		e.RunWithError(t, "walletkit", "tx", "encode", "--script", "zz")
		e.RunWithError(t, "walletkit", "tx", "encode", "--type", "MinerTransaction", "--nonce", "4294967296")
		e.RunWithError(t, "walletkit", "tx", "encode", "--config-file", "testdata/missing.yml")
	})
}

func TestTxDecode(t *testing.T) {
	e := newExecutor(t)
	tx := transaction.NewInvocationTX([]byte{0x51}, 5)
	b, err := tx.Bytes()
	require.NoError(t, err)

	for name, in := range map[string]string{
		"hex":    hex.EncodeToString(b),
		"base64": base64.StdEncoding.EncodeToString(b),
	} {
		t.Run(name, func(t *testing.T) {
			e.Run(t, "walletkit", "tx", "decode", in)
			out := e.Out.String()
			require.True(t, strings.HasPrefix(out, "{\n  \"txid\""), out)
			require.Contains(t, out, `"type": "InvocationTransaction"`)
			require.Contains(t, out, `"gas": 5`)
		})
	}

	t.Run("errors", func(t *testing.T) {
		e.RunWithError(t, "walletkit", "tx", "decode")
		e.RunWithError(t, "walletkit", "tx", "decode", "!!!")
		e.RunWithError(t, "walletkit", "tx", "decode", hex.EncodeToString(b[:len(b)-1]))
		e.RunWithError(t, "walletkit", "tx", "decode", "ff00")
	})
}
