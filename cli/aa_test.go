package main

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nspcc-dev/walletkit/pkg/aa"
	"github.com/stretchr/testify/require"
)

const (
	testFactory        = "0x3fC708630d85A3B5ec217E53100eC2b735d4f800"
	testImplementation = "0x6e3c94d74af6227aEeF75b54a679e969189a6aEC"
	testOwner          = "036b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
)

func TestAccountAddress(t *testing.T) {
	e := newExecutor(t)
	owner, err := hex.DecodeString(testOwner)
	require.NoError(t, err)
	expected, err := aa.ComputeCounterfactualAddress(common.HexToAddress(testFactory), owner,
		common.HexToAddress(testImplementation), aa.Keccak256)
	require.NoError(t, err)

	t.Run("flags", func(t *testing.T) {
		e.Run(t, "walletkit", "aa", "address", "--factory", testFactory,
			"--implementation", testImplementation, "--owner", testOwner)
		e.checkNextLine(t, "^"+expected.Hex()+"$")
		e.checkEOF(t)
	})
	t.Run("config", func(t *testing.T) {
		e.Run(t, "walletkit", "aa", "address", "--config-file", "testdata/walletkit.yml", "--owner", testOwner)
		e.checkNextLine(t, "^"+expected.Hex()+"$")
	})
	t.Run("errors", func(t *testing.T) {
		e.RunWithError(t, "walletkit", "aa", "address", "--factory", testFactory, "--implementation", testImplementation)
		e.RunWithError(t, "walletkit", "aa", "address", "--owner", testOwner)
		e.RunWithError(t, "walletkit", "aa", "address", "--factory", testFactory,
			"--implementation", testImplementation, "--owner", "xyz")
	})
}

func TestAccountInitCode(t *testing.T) {
	e := newExecutor(t)
	owner, err := hex.DecodeString(testOwner)
	require.NoError(t, err)
	expected, err := aa.BuildInitCode(common.HexToAddress(testFactory), owner, common.HexToAddress(testImplementation))
	require.NoError(t, err)

	e.Run(t, "walletkit", "aa", "initcode", "--config-file", "testdata/walletkit.yml", "--owner", "0x"+testOwner)
	e.checkNextLine(t, "^0x"+hex.EncodeToString(expected)+"$")
	e.checkEOF(t)
}
