package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lovelace-labs/ballast/internal/core/application"
)

var send = cli.Command{
	Name:  "send",
	Usage: "send funds from a stored wallet to a wallet or address",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Usage:    "the name of the sending wallet",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "the name or address of the recipient",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "the amount to send in ada, ie. 1.5",
			Required: true,
		},
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
	amount, err := application.ParseAda(ctx.String("amount"))
	if err != nil {
		return err
	}

	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	transfer, err := svc.transferSvc.Send(
		context.Background(), ctx.String("from"), ctx.String("to"), amount,
	)
	if err != nil {
		return err
	}

	fmt.Println("tx hash:", transfer.TxID)
	return nil
}
