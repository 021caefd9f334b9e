package application

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"

	"github.com/lovelace-labs/ballast/internal/core/domain"
	"github.com/lovelace-labs/ballast/pkg/circuitbreaker"
	"github.com/lovelace-labs/ballast/pkg/explorer"
	"github.com/lovelace-labs/ballast/pkg/network"
	"github.com/lovelace-labs/ballast/pkg/wallet"
)

// WalletService defines the methods of the application layer for managing
// wallets and reading their balances.
type WalletService interface {
	CreateWallet(
		ctx context.Context, name, addressType string,
	) (*domain.Wallet, error)
	RestoreWallet(
		ctx context.Context, name, mnemonic, addressType string,
	) (*domain.Wallet, error)
	ListWallets(ctx context.Context) ([]domain.Wallet, error)
	GetBalance(
		ctx context.Context, nameOrAddress string,
	) (*BalanceInfo, error)
	GetBalances(ctx context.Context) (map[string]BalanceInfo, error)
	EnsureReferenceWallets(ctx context.Context) ([]domain.Wallet, error)
}

type walletService struct {
	walletRepository domain.WalletRepository
	explorerSvc      explorer.Service
	net              *network.Network
	cb               *gobreaker.CircuitBreaker
}

// NewWalletService is a constructor function for WalletService.
func NewWalletService(
	walletRepository domain.WalletRepository,
	explorerSvc explorer.Service,
	net *network.Network,
) WalletService {
	return &walletService{
		walletRepository: walletRepository,
		explorerSvc:      explorerSvc,
		net:              net,
		cb:               circuitbreaker.NewCircuitBreaker("wallet-explorer"),
	}
}

func (s *walletService) CreateWallet(
	ctx context.Context, name, addressType string,
) (*domain.Wallet, error) {
	if name == "" {
		return nil, ErrNullWalletName
	}
	if addressType == "" {
		addressType = domain.WalletTypeBase
	}
	if existing, _ := s.walletRepository.GetWalletByName(ctx, name); existing != nil {
		return nil, fmt.Errorf("wallet '%s': %w", name, domain.ErrWalletAlreadyExists)
	}

	w, err := domain.NewWallet(name, s.net, addressType)
	if err != nil {
		return nil, err
	}
	if err := s.walletRepository.AddWallet(ctx, w); err != nil {
		return nil, err
	}

	log.Infof("created wallet '%s' with address %s", name, w.Address)
	return w, nil
}

func (s *walletService) RestoreWallet(
	ctx context.Context, name, mnemonic, addressType string,
) (*domain.Wallet, error) {
	if name == "" {
		return nil, ErrNullWalletName
	}
	if addressType == "" {
		addressType = domain.WalletTypeBase
	}
	if existing, _ := s.walletRepository.GetWalletByName(ctx, name); existing != nil {
		return nil, fmt.Errorf("wallet '%s': %w", name, domain.ErrWalletAlreadyExists)
	}

	w, err := domain.NewWalletFromMnemonic(name, mnemonic, s.net, addressType)
	if err != nil {
		return nil, err
	}
	if err := s.walletRepository.AddWallet(ctx, w); err != nil {
		return nil, err
	}

	log.Infof("restored wallet '%s' with address %s", name, w.Address)
	return w, nil
}

func (s *walletService) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	return s.walletRepository.GetAllWallets(ctx)
}

func (s *walletService) GetBalance(
	ctx context.Context, nameOrAddress string,
) (*BalanceInfo, error) {
	addr, err := resolveAddress(ctx, s.walletRepository, nameOrAddress)
	if err != nil {
		return nil, err
	}
	return s.getBalanceForAddress(addr)
}

func (s *walletService) GetBalances(
	ctx context.Context,
) (map[string]BalanceInfo, error) {
	wallets, err := s.walletRepository.GetAllWallets(ctx)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]BalanceInfo)
	var mtx sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	for i := range wallets {
		w := wallets[i]
		g.Go(func() error {
			info, err := s.getBalanceForAddress(w.Address)
			if err != nil {
				return fmt.Errorf("balance of '%s': %w", w.Name, err)
			}

			mtx.Lock()
			defer mtx.Unlock()
			balances[w.Name] = *info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return balances, nil
}

func (s *walletService) EnsureReferenceWallets(
	ctx context.Context,
) ([]domain.Wallet, error) {
	wallets := make([]domain.Wallet, 0, 2)
	for _, name := range []string{PortWalletName, StarboardWalletName} {
		if existing, _ := s.walletRepository.GetWalletByName(ctx, name); existing != nil {
			wallets = append(wallets, *existing)
			continue
		}

		created, err := s.CreateWallet(ctx, name, domain.WalletTypeBase)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, *created)
	}

	return wallets, nil
}

func (s *walletService) getBalanceForAddress(addr string) (*BalanceInfo, error) {
	balance, err := getBalanceFromExplorer(s.cb, s.explorerSvc, addr)
	if err != nil {
		return nil, err
	}
	unspents, err := getUnspentsFromExplorer(s.cb, s.explorerSvc, addr)
	if err != nil {
		return nil, err
	}

	info := newBalanceInfo(balance, len(unspents))
	return &info, nil
}

func resolveAddress(
	ctx context.Context, repo domain.WalletRepository, nameOrAddress string,
) (string, error) {
	if w, _ := repo.GetWalletByName(ctx, nameOrAddress); w != nil {
		return w.Address, nil
	}
	if _, err := wallet.DecodeAddress(nameOrAddress); err != nil {
		return "", fmt.Errorf(
			"'%s' is neither a known wallet nor a valid address", nameOrAddress,
		)
	}
	return nameOrAddress, nil
}
