package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var list = cli.Command{
	Name:  "list",
	Usage: "list the stored wallets",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "include the mnemonic of each wallet in the output",
		},
	},
	Action: listAction,
}

func listAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallets, err := svc.walletSvc.ListWallets(context.Background())
	if err != nil {
		return err
	}

	type walletInfo struct {
		Name         string `json:"name"`
		Address      string `json:"address"`
		Type         string `json:"type"`
		StakeAddress string `json:"stake_address,omitempty"`
		Mnemonic     string `json:"mnemonic,omitempty"`
	}

	infos := make([]walletInfo, 0, len(wallets))
	for _, w := range wallets {
		info := walletInfo{Name: w.Name, Address: w.Address, Type: w.Type}
		if ctx.Bool("verbose") {
			stakeAddress, err := w.StakeAddress(svc.net)
			if err != nil {
				return err
			}
			info.StakeAddress = stakeAddress
			info.Mnemonic = w.Mnemonic
		}
		infos = append(infos, info)
	}

	printRespJSON(infos)
	return nil
}
