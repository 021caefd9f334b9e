package application

import "errors"

var (
	// ErrNullWalletName ...
	ErrNullWalletName = errors.New("wallet name must not be null")
	// ErrNullTransferAmount ...
	ErrNullTransferAmount = errors.New("transfer amount must be greater than zero")
	// ErrSameSourceAndDestination ...
	ErrSameSourceAndDestination = errors.New(
		"source and destination must not be the same address",
	)
	// ErrMissingReferenceWallets is returned when rebalancing before the two
	// reference wallets have been created
	ErrMissingReferenceWallets = errors.New(
		"reference wallets not found, run the ensure flow first",
	)
)
