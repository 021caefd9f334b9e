package domain

import (
	"strings"

	"github.com/lovelace-labs/ballast/pkg/network"
	"github.com/lovelace-labs/ballast/pkg/wallet"
)

// Address types supported by wallet records.
const (
	WalletTypeBase       = "base"
	WalletTypeEnterprise = "enterprise"
)

// Wallet holds the keys material of a single-address wallet. The address,
// re-derivable from the mnemonic at any time, acts as the identity of the
// record.
type Wallet struct {
	Name     string
	Address  string
	Mnemonic string
	Type     string
}

// NewWallet generates a fresh mnemonic and returns the wallet holding it
// along with its first receiving address on the given network.
func NewWallet(
	name string, net *network.Network, addressType string,
) (*Wallet, error) {
	if err := validateAddressType(addressType); err != nil {
		return nil, err
	}

	w, err := wallet.NewWallet(wallet.NewWalletOpts{})
	if err != nil {
		return nil, err
	}

	return newWalletRecord(name, addressType, w, net)
}

// NewWalletFromMnemonic re-derives a wallet record from an existing
// mnemonic, typically to recover one on a new datadir.
func NewWalletFromMnemonic(
	name, mnemonic string, net *network.Network, addressType string,
) (*Wallet, error) {
	if err := validateAddressType(addressType); err != nil {
		return nil, err
	}

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: strings.Fields(mnemonic),
	})
	if err != nil {
		return nil, err
	}

	return newWalletRecord(name, addressType, w, net)
}

// MnemonicWords returns the mnemonic split back into its word list.
func (w *Wallet) MnemonicWords() []string {
	return strings.Fields(w.Mnemonic)
}

// StakeAddress re-derives the reward address controlled by the wallet's
// staking key on the given network.
func (w *Wallet) StakeAddress(net *network.Network) (string, error) {
	hd, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: w.MnemonicWords(),
	})
	if err != nil {
		return "", err
	}

	return hd.DeriveStakeAddress(wallet.DeriveAddressOpts{
		Account:      0,
		AddressIndex: 0,
		Network:      net,
	})
}

func newWalletRecord(
	name, addressType string, w *wallet.Wallet, net *network.Network,
) (*Wallet, error) {
	opts := wallet.DeriveAddressOpts{
		Account:      0,
		AddressIndex: 0,
		Network:      net,
	}

	var addr string
	var err error
	switch addressType {
	case WalletTypeEnterprise:
		addr, err = w.DeriveEnterpriseAddress(opts)
	default:
		addr, err = w.DeriveBaseAddress(opts)
	}
	if err != nil {
		return nil, err
	}

	mnemonic, err := w.Mnemonic()
	if err != nil {
		return nil, err
	}

	return &Wallet{
		Name:     name,
		Address:  addr,
		Mnemonic: strings.Join(mnemonic, " "),
		Type:     addressType,
	}, nil
}

func validateAddressType(addressType string) error {
	switch addressType {
	case WalletTypeBase, WalletTypeEnterprise:
		return nil
	default:
		return ErrInvalidAddressType
	}
}
