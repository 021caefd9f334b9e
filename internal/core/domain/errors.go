package domain

import "errors"

var (
	// ErrWalletNotFound ...
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletAlreadyExists is thrown when adding a wallet whose address is
	// already persisted
	ErrWalletAlreadyExists = errors.New("wallet already exists")
	// ErrTransferNotFound ...
	ErrTransferNotFound = errors.New("transfer not found")
	// ErrInvalidAddressType ...
	ErrInvalidAddressType = errors.New("address type must be either base or enterprise")
)
