package application

import (
	"github.com/sony/gobreaker"

	"github.com/lovelace-labs/ballast/pkg/explorer"
)

func getBalanceFromExplorer(
	cb *gobreaker.CircuitBreaker, explorerSvc explorer.Service, addr string,
) (uint64, error) {
	iBalance, err := cb.Execute(func() (interface{}, error) {
		return explorerSvc.GetBalance(addr)
	})
	if err != nil {
		return 0, err
	}
	return iBalance.(uint64), nil
}

func getUnspentsFromExplorer(
	cb *gobreaker.CircuitBreaker, explorerSvc explorer.Service, addr string,
) ([]explorer.Utxo, error) {
	iUtxos, err := cb.Execute(func() (interface{}, error) {
		return explorerSvc.GetUnspents(addr)
	})
	if err != nil {
		return nil, err
	}
	return iUtxos.([]explorer.Utxo), nil
}

func getLatestBlockFromExplorer(
	cb *gobreaker.CircuitBreaker, explorerSvc explorer.Service,
) (*explorer.BlockInfo, error) {
	iBlock, err := cb.Execute(func() (interface{}, error) {
		return explorerSvc.GetLatestBlock()
	})
	if err != nil {
		return nil, err
	}
	return iBlock.(*explorer.BlockInfo), nil
}

func getProtocolParamsFromExplorer(
	cb *gobreaker.CircuitBreaker, explorerSvc explorer.Service, epoch uint64,
) (*explorer.ProtocolParams, error) {
	iParams, err := cb.Execute(func() (interface{}, error) {
		return explorerSvc.GetProtocolParams(epoch)
	})
	if err != nil {
		return nil, err
	}
	return iParams.(*explorer.ProtocolParams), nil
}

func broadcastTransactionToExplorer(
	cb *gobreaker.CircuitBreaker, explorerSvc explorer.Service, txBytes []byte,
) (string, error) {
	iTxid, err := cb.Execute(func() (interface{}, error) {
		return explorerSvc.BroadcastTransaction(txBytes)
	})
	if err != nil {
		return "", err
	}
	return iTxid.(string), nil
}

func isTransactionConfirmedOnExplorer(
	cb *gobreaker.CircuitBreaker, explorerSvc explorer.Service, txid string,
) (bool, error) {
	iConfirmed, err := cb.Execute(func() (interface{}, error) {
		return explorerSvc.IsTransactionConfirmed(txid)
	})
	if err != nil {
		return false, err
	}
	return iConfirmed.(bool), nil
}
