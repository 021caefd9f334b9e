package domain

import "context"

// TransferRepository is the abstraction for any kind of store intended to
// persist the history of submitted transactions.
type TransferRepository interface {
	// AddTransfer adds the provided transfer to the repository.
	AddTransfer(ctx context.Context, transfer *Transfer) error
	// GetAllTransfers returns the whole history, most recent first.
	GetAllTransfers(ctx context.Context) ([]Transfer, error)
	// GetTransferByTxID returns the transfer with the given tx hash, or
	// ErrTransferNotFound.
	GetTransferByTxID(ctx context.Context, txid string) (*Transfer, error)
}
