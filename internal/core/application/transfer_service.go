package application

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/lovelace-labs/ballast/internal/core/domain"
	"github.com/lovelace-labs/ballast/pkg/circuitbreaker"
	"github.com/lovelace-labs/ballast/pkg/explorer"
	"github.com/lovelace-labs/ballast/pkg/network"
	"github.com/lovelace-labs/ballast/pkg/wallet"
)

// paymentDerivationPath locates the key funds are received on and spent
// from, ie. the first address of the first account.
const paymentDerivationPath = "0'/0/0"

// TransferService defines the methods of the application layer for moving
// funds between wallets.
type TransferService interface {
	// Rebalance moves the configured amount from the richer reference wallet
	// to the poorer one. It returns a nil transfer when balances are already
	// even and there is nothing to move.
	Rebalance(ctx context.Context) (*domain.Transfer, error)
	// Send moves the given lovelace amount between the given wallets. Both
	// ends accept a wallet name, the destination also accepts a raw address.
	Send(
		ctx context.Context, from, to string, amount uint64,
	) (*domain.Transfer, error)
	// GetHistory returns the recorded transfers, most recent first.
	GetHistory(ctx context.Context) ([]domain.Transfer, error)
}

type transferService struct {
	walletRepository   domain.WalletRepository
	transferRepository domain.TransferRepository
	explorerSvc        explorer.Service
	net                *network.Network
	feeReserve         uint64
	ttlWindow          uint64
	rebalanceAmount    uint64
	cb                 *gobreaker.CircuitBreaker
}

// NewTransferService is a constructor function for TransferService. Zero
// amounts fall back to the package defaults.
func NewTransferService(
	walletRepository domain.WalletRepository,
	transferRepository domain.TransferRepository,
	explorerSvc explorer.Service,
	net *network.Network,
	feeReserve, ttlWindow, rebalanceAmount uint64,
) TransferService {
	if feeReserve == 0 {
		feeReserve = DefaultFeeReserve
	}
	if ttlWindow == 0 {
		ttlWindow = DefaultTTLWindow
	}
	if rebalanceAmount == 0 {
		rebalanceAmount = DefaultRebalanceAmount
	}

	return &transferService{
		walletRepository:   walletRepository,
		transferRepository: transferRepository,
		explorerSvc:        explorerSvc,
		net:                net,
		feeReserve:         feeReserve,
		ttlWindow:          ttlWindow,
		rebalanceAmount:    rebalanceAmount,
		cb:                 circuitbreaker.NewCircuitBreaker("transfer-explorer"),
	}
}

func (s *transferService) Rebalance(ctx context.Context) (*domain.Transfer, error) {
	port, err := s.walletRepository.GetWalletByName(ctx, PortWalletName)
	if err != nil {
		return nil, ErrMissingReferenceWallets
	}
	starboard, err := s.walletRepository.GetWalletByName(ctx, StarboardWalletName)
	if err != nil {
		return nil, ErrMissingReferenceWallets
	}

	// both balances belong to the same snapshot, fetched one after the other
	// before any decision is taken
	portBalance, err := getBalanceFromExplorer(s.cb, s.explorerSvc, port.Address)
	if err != nil {
		return nil, err
	}
	starboardBalance, err := getBalanceFromExplorer(
		s.cb, s.explorerSvc, starboard.Address,
	)
	if err != nil {
		return nil, err
	}

	log.Infof(
		"'%s' holds %s ada, '%s' holds %s ada",
		port.Name, FormatAda(portBalance),
		starboard.Name, FormatAda(starboardBalance),
	)

	if portBalance == starboardBalance {
		log.Info("balances are already even, nothing to move")
		return nil, nil
	}

	from, to := port, starboard
	if starboardBalance > portBalance {
		from, to = starboard, port
	}

	log.Infof(
		"moving %s ada from '%s' to '%s'",
		FormatAda(s.rebalanceAmount), from.Name, to.Name,
	)
	return s.Send(ctx, from.Name, to.Name, s.rebalanceAmount)
}

func (s *transferService) Send(
	ctx context.Context, from, to string, amount uint64,
) (*domain.Transfer, error) {
	if amount == 0 {
		return nil, ErrNullTransferAmount
	}

	// sending requires the signing keys, the source must be a persisted
	// wallet rather than a bare address
	source, err := s.walletRepository.GetWalletByName(ctx, from)
	if err != nil {
		source, err = s.walletRepository.GetWalletByAddress(ctx, from)
		if err != nil {
			return nil, fmt.Errorf("source wallet '%s': %w", from, err)
		}
	}

	toAddress, err := resolveAddress(ctx, s.walletRepository, to)
	if err != nil {
		return nil, err
	}
	if toAddress == source.Address {
		return nil, ErrSameSourceAndDestination
	}

	unspents, err := getUnspentsFromExplorer(s.cb, s.explorerSvc, source.Address)
	if err != nil {
		return nil, err
	}

	coins, total, err := explorer.SelectUnspents(unspents, amount, s.feeReserve)
	if err != nil {
		return nil, fmt.Errorf(
			"funding transfer of %d lovelace from %s: %w",
			amount, source.Address, err,
		)
	}

	tip, err := getLatestBlockFromExplorer(s.cb, s.explorerSvc)
	if err != nil {
		return nil, err
	}

	inputs := make([]wallet.TxInput, 0, len(coins))
	for _, coin := range coins {
		in, err := coin.Parse()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, *in)
	}

	body, err := wallet.NewTxBody(wallet.NewTxBodyOpts{
		Inputs:        inputs,
		TotalInput:    total,
		OutputAddress: toAddress,
		OutputAmount:  amount,
		ChangeAddress: source.Address,
		Fee:           s.feeReserve,
		TTL:           tip.Slot + s.ttlWindow,
	})
	if err != nil {
		return nil, err
	}

	hd, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: source.MnemonicWords(),
	})
	if err != nil {
		return nil, err
	}

	tx, err := hd.SignTx(wallet.SignTxOpts{
		Body:            body,
		DerivationPaths: []string{paymentDerivationPath},
	})
	if err != nil {
		return nil, err
	}

	txBytes, err := tx.Serialize()
	if err != nil {
		return nil, err
	}
	txid, err := tx.TxID()
	if err != nil {
		return nil, err
	}

	s.checkMinFee(tip.Epoch, uint64(len(txBytes)))

	// when an identical transaction has already landed on chain there is
	// nothing to submit again
	if prior, _ := s.transferRepository.GetTransferByTxID(ctx, txid); prior != nil {
		confirmed, err := isTransactionConfirmedOnExplorer(
			s.cb, s.explorerSvc, txid,
		)
		if err != nil {
			return nil, err
		}
		if confirmed {
			log.Infof("transaction %s already confirmed, skipping broadcast", txid)
			return prior, nil
		}
	}

	broadcastedID, err := broadcastTransactionToExplorer(s.cb, s.explorerSvc, txBytes)
	if err != nil {
		return nil, err
	}
	if broadcastedID != txid {
		log.Warnf(
			"explorer answered with tx hash %s while %s was expected",
			broadcastedID, txid,
		)
	}

	log.Infof(
		"sent %s ada from %s to %s with a fee of %s ada, tx hash %s",
		FormatAda(amount), source.Address, toAddress,
		FormatAda(s.feeReserve), txid,
	)

	transfer := domain.NewTransfer(
		txid, source.Address, toAddress, amount, s.feeReserve, s.net.Name,
	)
	if err := s.transferRepository.AddTransfer(ctx, transfer); err != nil {
		// failing to persist history must not hide a successful broadcast
		log.WithError(err).Warn("could not record transfer in history")
	}

	return transfer, nil
}

func (s *transferService) GetHistory(ctx context.Context) ([]domain.Transfer, error) {
	return s.transferRepository.GetAllTransfers(ctx)
}

func (s *transferService) checkMinFee(epoch, txSize uint64) {
	params, err := getProtocolParamsFromExplorer(s.cb, s.explorerSvc, epoch)
	if err != nil {
		log.WithError(err).Debug("skipping min fee check")
		return
	}
	if minFee := params.MinFee(txSize); s.feeReserve < minFee {
		log.Warnf(
			"fee reserve %d is below the network minimum %d, "+
				"the transaction may be rejected",
			s.feeReserve, minFee,
		)
	}
}
