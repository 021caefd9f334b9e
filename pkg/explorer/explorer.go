package explorer

import (
	"errors"
)

var (
	// ErrInsufficientFunds ...
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNetworkUnavailable ...
	ErrNetworkUnavailable = errors.New("explorer is not reachable")
	// ErrSubmissionRejected ...
	ErrSubmissionRejected = errors.New("transaction rejected by the network")
)

// BlockInfo holds the chain tip details returned by the explorer. Slot is
// the absolute slot number and is used to compute the validity window of a
// transaction.
type BlockInfo struct {
	Height uint64
	Slot   uint64
	Epoch  uint64
	Hash   string
}

// ProtocolParams holds the subset of the ledger protocol parameters needed
// to sanity check the flat fee applied to outgoing transactions.
type ProtocolParams struct {
	MinFeeA   uint64
	MinFeeB   uint64
	MaxTxSize uint64
}

// MinFee returns the minimum fee accepted by the ledger for a transaction
// of the given size in bytes.
func (p *ProtocolParams) MinFee(txSize uint64) uint64 {
	return p.MinFeeA*txSize + p.MinFeeB
}

// Service is representation of an explorer that allows to fetch data from
// the blockchain and to broadcast transactions.
type Service interface {
	// GetBalance returns the spendable lovelace amount held by the given
	// address. Addresses that never appeared on chain have a zero balance.
	GetBalance(addr string) (balance uint64, err error)
	// GetUnspents fetches the utxos locked by the given address.
	GetUnspents(addr string) (unspents []Utxo, err error)
	// GetLatestBlock returns the current tip of the chain.
	GetLatestBlock() (blockInfo *BlockInfo, err error)
	// GetProtocolParams returns the ledger parameters of the given epoch.
	GetProtocolParams(epoch uint64) (params *ProtocolParams, err error)
	// BroadcastTransaction submits the serialized transaction to the network
	// and returns its hash.
	BroadcastTransaction(txBytes []byte) (txid string, err error)
	// IsTransactionConfirmed returns whether the tx identified by its hash
	// has been included in the blockchain.
	IsTransactionConfirmed(txid string) (confirmed bool, err error)
}
