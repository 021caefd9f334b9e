package inmemory

import (
	"context"
	"sync"

	"github.com/lovelace-labs/ballast/internal/core/domain"
)

type walletInmemoryStore struct {
	wallets []domain.Wallet
	locker  *sync.RWMutex
}

type WalletRepositoryImpl struct {
	store *walletInmemoryStore
}

// NewWalletRepositoryImpl returns a new empty WalletRepositoryImpl
func NewWalletRepositoryImpl() domain.WalletRepository {
	return &WalletRepositoryImpl{
		store: &walletInmemoryStore{
			wallets: make([]domain.Wallet, 0),
			locker:  &sync.RWMutex{},
		},
	}
}

func (r *WalletRepositoryImpl) AddWallet(
	ctx context.Context, wallet *domain.Wallet,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	for _, w := range r.store.wallets {
		if w.Address == wallet.Address {
			return domain.ErrWalletAlreadyExists
		}
	}

	r.store.wallets = append(r.store.wallets, *wallet)
	return nil
}

func (r *WalletRepositoryImpl) GetWalletByAddress(
	ctx context.Context, addr string,
) (*domain.Wallet, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	for i := range r.store.wallets {
		if r.store.wallets[i].Address == addr {
			wallet := r.store.wallets[i]
			return &wallet, nil
		}
	}

	return nil, domain.ErrWalletNotFound
}

func (r *WalletRepositoryImpl) GetWalletByName(
	ctx context.Context, name string,
) (*domain.Wallet, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	for i := range r.store.wallets {
		if r.store.wallets[i].Name == name {
			wallet := r.store.wallets[i]
			return &wallet, nil
		}
	}

	return nil, domain.ErrWalletNotFound
}

func (r *WalletRepositoryImpl) GetAllWallets(
	ctx context.Context,
) ([]domain.Wallet, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	wallets := make([]domain.Wallet, len(r.store.wallets))
	copy(wallets, r.store.wallets)
	return wallets, nil
}

func (r *WalletRepositoryImpl) ReplaceAllWallets(
	ctx context.Context, wallets []domain.Wallet,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	replacement := make([]domain.Wallet, len(wallets))
	copy(replacement, wallets)
	r.store.wallets = replacement
	return nil
}
