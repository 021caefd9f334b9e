package storage

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/lovelace-labs/ballast/internal/core/domain"
	"github.com/lovelace-labs/ballast/internal/core/ports"
	dbbadger "github.com/lovelace-labs/ballast/internal/infrastructure/storage/badger"
	"github.com/lovelace-labs/ballast/internal/infrastructure/storage/file"
)

type repoManager struct {
	walletRepository   domain.WalletRepository
	transferRepository domain.TransferRepository
	db                 *dbbadger.DbManager
}

// NewRepoManager wires the file backed wallet repository and the badger
// backed transfer history on the given datadir.
func NewRepoManager(datadir string) (ports.RepoManager, error) {
	walletRepo, err := file.NewWalletRepositoryImpl(
		filepath.Join(datadir, "wallets.json"),
	)
	if err != nil {
		return nil, err
	}

	db, err := dbbadger.NewDbManager(filepath.Join(datadir, "history"), nil)
	if err != nil {
		return nil, err
	}

	return &repoManager{
		walletRepository:   walletRepo,
		transferRepository: dbbadger.NewTransferRepositoryImpl(db.Store),
		db:                 db,
	}, nil
}

func (m *repoManager) WalletRepository() domain.WalletRepository {
	return m.walletRepository
}

func (m *repoManager) TransferRepository() domain.TransferRepository {
	return m.transferRepository
}

func (m *repoManager) Close() {
	if err := m.db.Close(); err != nil {
		log.WithError(err).Warn("could not close history db")
	}
}
