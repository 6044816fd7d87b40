/*
Package txcmd contains commands decoding and encoding transactions.
*/
package txcmd

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/nspcc-dev/go-ordered-json"
	"github.com/nspcc-dev/walletkit/cli/flags"
	"github.com/nspcc-dev/walletkit/cli/options"
	"github.com/nspcc-dev/walletkit/pkg/core/transaction"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var errNoInput = errors.New("no transaction given")

// NewCommands returns transaction commands.
func NewCommands() []cli.Command {
	encodeFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "type, t",
			Value: transaction.InvocationType.String(),
			Usage: "transaction type name or tag (InvocationTransaction, ContractTransaction, IssueTransaction, MinerTransaction)",
		},
		cli.IntFlag{
			Name:  "version, v",
			Value: -1,
			Usage: "transaction version (the maximum supported by the type if not specified)",
		},
		cli.StringFlag{
			Name:  "script, s",
			Usage: "hex-encoded invocation script",
		},
		flags.Fixed8Flag{
			Name:  "gas, g",
			Usage: "gas attached to the invocation",
		},
		cli.Uint64Flag{
			Name:  "nonce",
			Usage: "miner transaction nonce",
		},
	}, options.Common...)
	return []cli.Command{{
		Name:  "tx",
		Usage: "Transaction coding",
		Subcommands: []cli.Command{
			{
				Name:      "decode",
				Usage:     "Decode a serialized transaction into JSON",
				UsageText: "decode <hex|base64>",
				Action:    decodeTx,
				Flags:     options.Common,
			},
			{
				Name:      "encode",
				Usage:     "Encode a transaction into hex",
				UsageText: "encode [--type <type>] [--version <n>] [--script <hex>] [--gas <amount>] [--nonce <n>]",
				Action:    encodeTx,
				Flags:     encodeFlags,
			},
		},
	}}
}

// parseInput decodes hex first since a hex string is often valid base64.
func parseInput(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if b, err := hex.DecodeString(strings.TrimPrefix(s, "0x")); err == nil {
		return b, nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.New("unknown encoding: base64 or hex are supported")
	}
	return b, nil
}

func decodeTx(ctx *cli.Context) error {
	_, log, closer, err := options.GetLoggerFromContext(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if !ctx.Args().Present() {
		return cli.NewExitError(errNoInput, 1)
	}
	b, err := parseInput(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	tx, err := transaction.NewTransactionFromBytes(b)
	if err != nil {
		log.Debug("failed to decode transaction", zap.Int("size", len(b)), zap.Error(err))
		return cli.NewExitError(fmt.Errorf("failed to decode transaction: %w", err), 1)
	}
	log.Debug("transaction decoded", zap.Stringer("type", tx.Type), zap.Uint8("version", tx.Version))

	raw, err := tx.MarshalJSON()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	out, err := indent(raw)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}

// indent pretty-prints JSON keeping the order of object keys.
func indent(raw []byte) ([]byte, error) {
	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseOrderedObject()

	var v any
	if err := d.Decode(&v); err != nil {
		return nil, err
	}
	return json.MarshalIndent(v, "", "  ")
}

func parseType(s string) (transaction.TXType, error) {
	if t, err := transaction.TXTypeFromString(s); err == nil {
		return t, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown transaction type %q", s)
	}
	return transaction.TXType(n), nil
}

func encodeTx(ctx *cli.Context) error {
	_, log, closer, err := options.GetLoggerFromContext(ctx)
	if err != nil {
		return err
	}
	defer closer()

	typ, err := parseType(ctx.String("type"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	version, err := transaction.MaxVersion(typ)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if v := ctx.Int("version"); v >= 0 {
		if v > 0xff {
			return cli.NewExitError(fmt.Errorf("invalid version %d", v), 1)
		}
		version = uint8(v)
	}
	script, err := hex.DecodeString(strings.TrimPrefix(ctx.String("script"), "0x"))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("invalid script: %w", err), 1)
	}
	nonce := ctx.Uint64("nonce")
	if nonce > math.MaxUint32 {
		return cli.NewExitError(fmt.Errorf("invalid nonce %d", nonce), 1)
	}
	gas := flags.Fixed8FromContext(ctx, "gas")
	if gas < 0 {
		return cli.NewExitError(errors.New("negative gas"), 1)
	}

	var data transaction.Data
	switch typ {
	case transaction.InvocationType:
		data = &transaction.InvocationTX{Script: script, Gas: uint64(gas)}
	case transaction.ContractType:
		data = &transaction.ContractTX{}
	case transaction.IssueType:
		data = &transaction.IssueTX{}
	case transaction.MinerType:
		data = &transaction.MinerTX{Nonce: uint32(nonce)}
	default:
		return cli.NewExitError(fmt.Errorf("%s can't be built from flags", typ), 1)
	}
	tx := &transaction.Transaction{
		Type:       typ,
		Version:    version,
		Data:       data,
		Attributes: []transaction.Attribute{},
		Scripts:    []transaction.Witness{},
	}
	b, err := tx.Bytes()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Debug("transaction encoded", zap.Stringer("type", typ), zap.Int("size", len(b)))
	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(b))
	return nil
}
