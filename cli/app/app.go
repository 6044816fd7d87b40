package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nspcc-dev/walletkit/cli/account"
	"github.com/nspcc-dev/walletkit/cli/txcmd"
	"github.com/nspcc-dev/walletkit/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "WalletKit\nVersion: %s\nGoVersion: %s\n",
		c.App.Version,
		runtime.Version(),
	)
}

// New creates a walletkit instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "walletkit"
	ctl.Version = config.Version
	if ctl.Version == "" {
		ctl.Version = "dev"
	}
	ctl.Usage = "Transaction codec and counterfactual account toolkit"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, txcmd.NewCommands()...)
	ctl.Commands = append(ctl.Commands, account.NewCommands()...)
	return ctl
}
