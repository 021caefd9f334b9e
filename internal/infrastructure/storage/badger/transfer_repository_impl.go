package dbbadger

import (
	"context"
	"sort"

	"github.com/timshannon/badgerhold/v4"

	"github.com/lovelace-labs/ballast/internal/core/domain"
)

type transferRepositoryImpl struct {
	store *badgerhold.Store
}

// NewTransferRepositoryImpl initialize a badger implementation of the
// domain.TransferRepository
func NewTransferRepositoryImpl(store *badgerhold.Store) domain.TransferRepository {
	return transferRepositoryImpl{store}
}

func (r transferRepositoryImpl) AddTransfer(
	ctx context.Context, transfer *domain.Transfer,
) error {
	if err := r.store.Insert(transfer.ID, transfer); err != nil {
		if err == badgerhold.ErrKeyExists {
			return nil
		}
		return err
	}
	return nil
}

func (r transferRepositoryImpl) GetAllTransfers(
	ctx context.Context,
) ([]domain.Transfer, error) {
	transfers := make([]domain.Transfer, 0)
	if err := r.store.Find(&transfers, nil); err != nil {
		return nil, err
	}

	sort.Slice(transfers, func(i, j int) bool {
		return transfers[i].CreatedAt > transfers[j].CreatedAt
	})

	return transfers, nil
}

func (r transferRepositoryImpl) GetTransferByTxID(
	ctx context.Context, txid string,
) (*domain.Transfer, error) {
	query := badgerhold.Where("TxID").Eq(txid)

	transfers := make([]domain.Transfer, 0)
	if err := r.store.Find(&transfers, query); err != nil {
		return nil, err
	}
	if len(transfers) == 0 {
		return nil, domain.ErrTransferNotFound
	}

	return &transfers[0], nil
}
