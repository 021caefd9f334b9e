package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lovelace-labs/ballast/internal/core/domain"
)

// walletRecord is the on disk shape of a wallet. The file holds an ordered
// json array of these records.
type walletRecord struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Mnemonic string `json:"mnemonic"`
	Type     string `json:"type"`
}

type WalletRepositoryImpl struct {
	filePath string
	locker   *sync.RWMutex
}

// NewWalletRepositoryImpl returns a file backed implementation of the
// domain.WalletRepository persisting records at the given path. The parent
// directory is created if missing, while a missing file simply means no
// wallets were created yet.
func NewWalletRepositoryImpl(filePath string) (domain.WalletRepository, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, fmt.Errorf("creating datadir: %w", err)
	}

	return &WalletRepositoryImpl{
		filePath: filePath,
		locker:   &sync.RWMutex{},
	}, nil
}

func (r *WalletRepositoryImpl) AddWallet(
	ctx context.Context, wallet *domain.Wallet,
) error {
	r.locker.Lock()
	defer r.locker.Unlock()

	wallets, err := r.read()
	if err != nil {
		return err
	}
	for _, w := range wallets {
		if w.Address == wallet.Address {
			return domain.ErrWalletAlreadyExists
		}
	}

	wallets = append(wallets, *wallet)
	return r.write(wallets)
}

func (r *WalletRepositoryImpl) GetWalletByAddress(
	ctx context.Context, addr string,
) (*domain.Wallet, error) {
	r.locker.RLock()
	defer r.locker.RUnlock()

	wallets, err := r.read()
	if err != nil {
		return nil, err
	}
	for i := range wallets {
		if wallets[i].Address == addr {
			return &wallets[i], nil
		}
	}

	return nil, domain.ErrWalletNotFound
}

func (r *WalletRepositoryImpl) GetWalletByName(
	ctx context.Context, name string,
) (*domain.Wallet, error) {
	r.locker.RLock()
	defer r.locker.RUnlock()

	wallets, err := r.read()
	if err != nil {
		return nil, err
	}
	for i := range wallets {
		if wallets[i].Name == name {
			return &wallets[i], nil
		}
	}

	return nil, domain.ErrWalletNotFound
}

func (r *WalletRepositoryImpl) GetAllWallets(
	ctx context.Context,
) ([]domain.Wallet, error) {
	r.locker.RLock()
	defer r.locker.RUnlock()

	return r.read()
}

func (r *WalletRepositoryImpl) ReplaceAllWallets(
	ctx context.Context, wallets []domain.Wallet,
) error {
	r.locker.Lock()
	defer r.locker.Unlock()

	return r.write(wallets)
}

func (r *WalletRepositoryImpl) read() ([]domain.Wallet, error) {
	buf, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Wallet{}, nil
		}
		return nil, err
	}

	records := make([]walletRecord, 0)
	if err := json.Unmarshal(buf, &records); err != nil {
		return nil, fmt.Errorf("malformed wallets file %s: %v", r.filePath, err)
	}

	wallets := make([]domain.Wallet, 0, len(records))
	for _, record := range records {
		wallets = append(wallets, domain.Wallet{
			Name:     record.Name,
			Address:  record.Address,
			Mnemonic: record.Mnemonic,
			Type:     record.Type,
		})
	}

	return wallets, nil
}

func (r *WalletRepositoryImpl) write(wallets []domain.Wallet) error {
	records := make([]walletRecord, 0, len(wallets))
	for _, wallet := range wallets {
		records = append(records, walletRecord{
			Name:     wallet.Name,
			Address:  wallet.Address,
			Mnemonic: wallet.Mnemonic,
			Type:     wallet.Type,
		})
	}

	buf, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	// the records go to a temp file first so that a crash half-way never
	// leaves a truncated wallets file behind
	tmpPath := r.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, buf, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, r.filePath)
}
