// Package offline provides a degraded explorer.Service used when no indexer
// is reachable. Reads answer with zero values and broadcasts fail, so that
// the commands that only derive keys and addresses keep working without a
// network connection.
package offline

import (
	"github.com/lovelace-labs/ballast/pkg/explorer"
)

type offline struct{}

// NewService returns an explorer.Service that never touches the network.
func NewService() explorer.Service {
	return &offline{}
}

func (o *offline) GetBalance(_ string) (uint64, error) {
	return 0, nil
}

func (o *offline) GetUnspents(_ string) ([]explorer.Utxo, error) {
	return []explorer.Utxo{}, nil
}

func (o *offline) GetLatestBlock() (*explorer.BlockInfo, error) {
	return &explorer.BlockInfo{}, nil
}

func (o *offline) GetProtocolParams(_ uint64) (*explorer.ProtocolParams, error) {
	return &explorer.ProtocolParams{}, nil
}

func (o *offline) BroadcastTransaction(_ []byte) (string, error) {
	return "", explorer.ErrNetworkUnavailable
}

func (o *offline) IsTransactionConfirmed(_ string) (bool, error) {
	return false, nil
}
