package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lovelace-labs/ballast/internal/core/application"
)

var run = cli.Command{
	Name: "run",
	Usage: "ensure the two reference wallets exist and move funds from the " +
		"richer one to the poorer one",
	Action: runAction,
}

func runAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallets, err := svc.walletSvc.EnsureReferenceWallets(context.Background())
	if err != nil {
		return err
	}

	for _, w := range wallets {
		balance, err := svc.walletSvc.GetBalance(context.Background(), w.Name)
		if err != nil {
			return err
		}
		fmt.Printf(
			"%s\t%s\t%s ada (%d utxos)\n",
			w.Name, w.Address, balance.Ada.String(), balance.UtxoCount,
		)
	}

	transfer, err := svc.transferSvc.Rebalance(context.Background())
	if err != nil {
		return err
	}
	if transfer == nil {
		fmt.Println("balances are even, no transfer needed")
		return nil
	}

	fmt.Printf(
		"moved %s ada from %s to %s\ntx hash: %s\n",
		application.FormatAda(transfer.Amount),
		transfer.FromAddress, transfer.ToAddress, transfer.TxID,
	)
	return nil
}
