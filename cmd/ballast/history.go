package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lovelace-labs/ballast/internal/core/application"
)

var history = cli.Command{
	Name:   "history",
	Usage:  "list the recorded transfers, most recent first",
	Action: historyAction,
}

func historyAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	transfers, err := svc.transferSvc.GetHistory(context.Background())
	if err != nil {
		return err
	}

	type transferInfo struct {
		TxID    string `json:"tx_hash"`
		From    string `json:"from"`
		To      string `json:"to"`
		Ada     string `json:"ada"`
		FeeAda  string `json:"fee_ada"`
		Network string `json:"network"`
		Date    string `json:"date"`
	}

	infos := make([]transferInfo, 0, len(transfers))
	for _, t := range transfers {
		infos = append(infos, transferInfo{
			TxID:    t.TxID,
			From:    t.FromAddress,
			To:      t.ToAddress,
			Ada:     application.FormatAda(t.Amount),
			FeeAda:  application.FormatAda(t.Fee),
			Network: t.Network,
			Date:    time.Unix(t.CreatedAt, 0).Format(time.RFC3339),
		})
	}

	printRespJSON(infos)
	return nil
}
