package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/lovelace-labs/ballast/internal/config"
	"github.com/lovelace-labs/ballast/internal/core/application"
	"github.com/lovelace-labs/ballast/internal/core/ports"
	"github.com/lovelace-labs/ballast/internal/infrastructure/storage"
	"github.com/lovelace-labs/ballast/pkg/explorer"
	"github.com/lovelace-labs/ballast/pkg/explorer/blockfrost"
	"github.com/lovelace-labs/ballast/pkg/explorer/offline"
	"github.com/lovelace-labs/ballast/pkg/network"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "ballast CLI"
	app.Usage = "Command line interface for keeping two Cardano wallets even"
	app.Commands = append(
		app.Commands,
		&run,
		&create,
		&restore,
		&list,
		&balance,
		&send,
		&history,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

type services struct {
	walletSvc   application.WalletService
	transferSvc application.TransferService
	repoManager ports.RepoManager
	net         *network.Network
}

func getServices(ctx *cli.Context) (*services, func(), error) {
	if err := config.InitConfig(); err != nil {
		return nil, nil, err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	net, err := config.GetNetwork()
	if err != nil {
		return nil, nil, err
	}

	explorerSvc, err := getExplorer()
	if err != nil {
		return nil, nil, err
	}

	repoManager, err := storage.NewRepoManager(config.GetDatadir())
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { repoManager.Close() }

	walletSvc := application.NewWalletService(
		repoManager.WalletRepository(), explorerSvc, net,
	)
	transferSvc := application.NewTransferService(
		repoManager.WalletRepository(), repoManager.TransferRepository(),
		explorerSvc, net,
		config.GetUint64(config.FeeReserveKey),
		config.GetUint64(config.TTLWindowKey),
		config.GetUint64(config.RebalanceAmountKey),
	)

	return &services{
		walletSvc:   walletSvc,
		transferSvc: transferSvc,
		repoManager: repoManager,
		net:         net,
	}, cleanup, nil
}

func getExplorer() (explorer.Service, error) {
	projectID := config.GetString(config.ProjectIDKey)
	if len(projectID) <= 0 {
		log.Warn(
			"no project id provided, running against a stub explorer, " +
				"set BALLAST_PROJECT_ID to reach the network",
		)
		return offline.NewService(), nil
	}
	return blockfrost.NewService(config.GetExplorerURL(), projectID)
}

func printRespJSON(resp interface{}) {
	jsonStr, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Println(string(jsonStr))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[ballast] %v\n", err)
	}
	os.Exit(1)
}
