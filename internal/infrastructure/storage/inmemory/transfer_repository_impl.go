package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/lovelace-labs/ballast/internal/core/domain"
)

type transferInmemoryStore struct {
	transfers map[string]domain.Transfer
	locker    *sync.RWMutex
}

type TransferRepositoryImpl struct {
	store *transferInmemoryStore
}

// NewTransferRepositoryImpl returns a new empty TransferRepositoryImpl
func NewTransferRepositoryImpl() domain.TransferRepository {
	return &TransferRepositoryImpl{
		store: &transferInmemoryStore{
			transfers: make(map[string]domain.Transfer),
			locker:    &sync.RWMutex{},
		},
	}
}

func (r *TransferRepositoryImpl) AddTransfer(
	ctx context.Context, transfer *domain.Transfer,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	r.store.transfers[transfer.ID] = *transfer
	return nil
}

func (r *TransferRepositoryImpl) GetAllTransfers(
	ctx context.Context,
) ([]domain.Transfer, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	transfers := make([]domain.Transfer, 0, len(r.store.transfers))
	for _, transfer := range r.store.transfers {
		transfers = append(transfers, transfer)
	}

	sort.Slice(transfers, func(i, j int) bool {
		return transfers[i].CreatedAt > transfers[j].CreatedAt
	})

	return transfers, nil
}

func (r *TransferRepositoryImpl) GetTransferByTxID(
	ctx context.Context, txid string,
) (*domain.Transfer, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	for _, transfer := range r.store.transfers {
		if transfer.TxID == txid {
			found := transfer
			return &found, nil
		}
	}

	return nil, domain.ErrTransferNotFound
}
