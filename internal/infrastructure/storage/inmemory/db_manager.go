package inmemory

import (
	"github.com/lovelace-labs/ballast/internal/core/domain"
	"github.com/lovelace-labs/ballast/internal/core/ports"
)

type RepoManager struct {
	walletRepository   domain.WalletRepository
	transferRepository domain.TransferRepository
}

// NewRepoManager returns a ports.RepoManager with volatile repositories,
// mainly useful for tests.
func NewRepoManager() ports.RepoManager {
	return &RepoManager{
		walletRepository:   NewWalletRepositoryImpl(),
		transferRepository: NewTransferRepositoryImpl(),
	}
}

func (d *RepoManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

func (d *RepoManager) TransferRepository() domain.TransferRepository {
	return d.transferRepository
}

func (d *RepoManager) Close() {}
