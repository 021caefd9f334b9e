package config

import (
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"

	"github.com/lovelace-labs/ballast/internal/core/application"
	"github.com/lovelace-labs/ballast/pkg/network"
)

const (
	// NetworkKey is the name of the Cardano network to operate on
	NetworkKey = "NETWORK"
	// ExplorerURLKey is the base URL of the Blockfrost compatible explorer,
	// when empty the default endpoint of the selected network is used
	ExplorerURLKey = "EXPLORER_URL"
	// ProjectIDKey is the Blockfrost project id used to authenticate explorer
	// requests, when empty the tool runs against a stub explorer
	ProjectIDKey = "PROJECT_ID"
	// DatadirKey is the local data directory storing wallets and history
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// FeeReserveKey is the flat fee in lovelace set aside on every transfer
	FeeReserveKey = "FEE_RESERVE"
	// TTLWindowKey is the number of slots a transaction stays valid for after
	// the chain tip observed at build time
	TTLWindowKey = "TTL_WINDOW"
	// RebalanceAmountKey is the amount in lovelace moved by the rebalancing
	// flow from the richer reference wallet to the poorer one
	RebalanceAmountKey = "REBALANCE_AMOUNT"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("ballast", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("BALLAST")
	vip.AutomaticEnv()

	vip.SetDefault(NetworkKey, network.Preprod.Name)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(FeeReserveKey, application.DefaultFeeReserve)
	vip.SetDefault(TTLWindowKey, application.DefaultTTLWindow)
	vip.SetDefault(RebalanceAmountKey, application.DefaultRebalanceAmount)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetNetwork returns the parameters of the configured network.
func GetNetwork() (*network.Network, error) {
	return network.FromName(GetString(NetworkKey))
}

// GetExplorerURL returns the configured explorer endpoint, falling back to
// the default one of the configured network.
func GetExplorerURL() string {
	if url := GetString(ExplorerURLKey); len(url) > 0 {
		return url
	}
	net, err := GetNetwork()
	if err != nil {
		return ""
	}
	return net.ExplorerURL
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	if _, err := network.FromName(GetString(NetworkKey)); err != nil {
		return err
	}

	if GetUint64(FeeReserveKey) == 0 {
		return fmt.Errorf("%s must be greater than zero", FeeReserveKey)
	}
	if GetUint64(RebalanceAmountKey) == 0 {
		return fmt.Errorf("%s must be greater than zero", RebalanceAmountKey)
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(GetDatadir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
