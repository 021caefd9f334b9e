package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lovelace-labs/ballast/internal/core/domain"
)

var create = cli.Command{
	Name:  "create",
	Usage: "create a wallet with a fresh mnemonic",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the name the wallet is referred to by",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "type",
			Usage: "the address type, either base or enterprise",
			Value: domain.WalletTypeBase,
		},
	},
	Action: createAction,
}

func createAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	w, err := svc.walletSvc.CreateWallet(
		context.Background(), ctx.String("name"), ctx.String("type"),
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("address:", w.Address)
	fmt.Println("mnemonic:", w.Mnemonic)
	fmt.Println()
	fmt.Println("write down the mnemonic, it is the only way to recover the wallet")

	return nil
}
