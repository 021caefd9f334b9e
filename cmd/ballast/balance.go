package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var balance = cli.Command{
	Name:      "balance",
	Usage:     "get the balance of a wallet by name or address",
	ArgsUsage: "<name or address>",
	Action:    balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, "balance"}
	}

	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := svc.walletSvc.GetBalance(context.Background(), ctx.Args().First())
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"lovelace":   info.Lovelace,
		"ada":        info.Ada.String(),
		"utxo_count": info.UtxoCount,
	})
	return nil
}
