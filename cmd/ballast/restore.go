package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lovelace-labs/ballast/internal/core/domain"
)

var restore = cli.Command{
	Name:  "restore",
	Usage: "restore a wallet from an existing mnemonic",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the name the wallet is referred to by",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "mnemonic",
			Usage:    "the whitespace separated list of mnemonic words",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "type",
			Usage: "the address type, either base or enterprise",
			Value: domain.WalletTypeBase,
		},
	},
	Action: restoreAction,
}

func restoreAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	w, err := svc.walletSvc.RestoreWallet(
		context.Background(),
		ctx.String("name"), ctx.String("mnemonic"), ctx.String("type"),
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("address:", w.Address)

	return nil
}
