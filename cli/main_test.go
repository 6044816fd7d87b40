package main

import (
	"testing"
)

func TestCLIVersion(t *testing.T) {
	e := newExecutor(t)
	e.Run(t, "walletkit", "--version")
	e.checkNextLine(t, "^WalletKit")
	e.checkNextLine(t, "^Version:")
	e.checkNextLine(t, "^GoVersion:")
	e.checkEOF(t)
}
