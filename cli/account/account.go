/*
Package account contains commands deriving counterfactual smart accounts.
*/
package account

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nspcc-dev/walletkit/cli/flags"
	"github.com/nspcc-dev/walletkit/cli/options"
	"github.com/nspcc-dev/walletkit/pkg/aa"
	"github.com/nspcc-dev/walletkit/pkg/config"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var errNoOwner = errors.New("owner is not specified, use '--owner' flag")

// NewCommands returns account abstraction commands.
func NewCommands() []cli.Command {
	accFlags := append([]cli.Flag{
		flags.AddressFlag{
			Name:  "factory, f",
			Usage: "factory contract address (taken from the configuration if not specified)",
		},
		cli.StringFlag{
			Name:  "owner, o",
			Usage: "hex-encoded owner public key",
		},
		flags.AddressFlag{
			Name:  "implementation, i",
			Usage: "implementation contract address (taken from the configuration if not specified)",
		},
	}, options.Common...)
	return []cli.Command{{
		Name:  "aa",
		Usage: "Counterfactual smart accounts",
		Subcommands: []cli.Command{
			{
				Name:      "address",
				Usage:     "Compute the address of an account before its deployment",
				UsageText: "address --owner <key> [--factory <address>] [--implementation <address>] [--config-file <file>]",
				Action:    printAddress,
				Flags:     accFlags,
			},
			{
				Name:      "initcode",
				Usage:     "Build the factory call deploying an account",
				UsageText: "initcode --owner <key> [--factory <address>] [--implementation <address>] [--config-file <file>]",
				Action:    printInitCode,
				Flags:     accFlags,
			},
		},
	}}
}

// getAccount combines flags with the account configuration.
func getAccount(ctx *cli.Context, cfg config.Account) (aa.Account, error) {
	var acc aa.Account

	owner := strings.TrimPrefix(ctx.String("owner"), "0x")
	if owner == "" {
		return acc, errNoOwner
	}
	b, err := hex.DecodeString(owner)
	if err != nil {
		return acc, fmt.Errorf("invalid owner: %w", err)
	}
	acc.Owner = b

	for _, p := range []struct {
		name string
		conf string
		dst  *common.Address
	}{
		{"factory", cfg.Factory, &acc.Factory},
		{"implementation", cfg.Implementation, &acc.Implementation},
	} {
		if addr, ok := flags.AddressFromContext(ctx, p.name); ok {
			*p.dst = addr
			continue
		}
		if p.conf == "" {
			return acc, fmt.Errorf("%s is not specified, use '--%s' flag or configuration file", p.name, p.name)
		}
		*p.dst = common.HexToAddress(p.conf)
	}
	return acc, nil
}

func printAddress(ctx *cli.Context) error {
	cfg, log, closer, err := options.GetLoggerFromContext(ctx)
	if err != nil {
		return err
	}
	defer closer()

	acc, err := getAccount(ctx, cfg.Account)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	h, err := cfg.Account.Hasher()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	addr, err := cfg.Account.Scheme().Address(acc, h)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Debug("address derived",
		zap.Stringer("factory", acc.Factory),
		zap.Stringer("implementation", acc.Implementation),
		zap.String("hash", cfg.Account.Hash))

	if len(addr) == common.AddressLength {
		fmt.Fprintln(ctx.App.Writer, common.BytesToAddress(addr).Hex())
	} else {
		fmt.Fprintln(ctx.App.Writer, "0x"+hex.EncodeToString(addr))
	}
	return nil
}

func printInitCode(ctx *cli.Context) error {
	cfg, log, closer, err := options.GetLoggerFromContext(ctx)
	if err != nil {
		return err
	}
	defer closer()

	acc, err := getAccount(ctx, cfg.Account)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	code, err := cfg.Account.Scheme().InitCode(acc)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Debug("init code built", zap.Int("size", len(code)))
	fmt.Fprintln(ctx.App.Writer, "0x"+hex.EncodeToString(code))
	return nil
}
