package domain

import "context"

// WalletRepository is the abstraction for any kind of store intended to
// persist wallet records.
type WalletRepository interface {
	// AddWallet adds the provided wallet to the repository. Adding a wallet
	// whose address is already known fails with ErrWalletAlreadyExists.
	AddWallet(ctx context.Context, wallet *Wallet) error
	// GetWalletByAddress returns the wallet with the given address, or
	// ErrWalletNotFound.
	GetWalletByAddress(ctx context.Context, addr string) (*Wallet, error)
	// GetWalletByName returns the wallet with the given name, or
	// ErrWalletNotFound.
	GetWalletByName(ctx context.Context, name string) (*Wallet, error)
	// GetAllWallets returns all persisted wallets in insertion order.
	GetAllWallets(ctx context.Context) ([]Wallet, error)
	// ReplaceAllWallets replaces the whole set of persisted records, records
	// are never mutated in place.
	ReplaceAllWallets(ctx context.Context, wallets []Wallet) error
}
