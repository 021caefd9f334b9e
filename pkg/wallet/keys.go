package wallet

import (
	"github.com/lovelace-labs/ballast/pkg/network"
)

const (
	accountPrivateKeyHRP = "acct_xsk"
	accountPublicKeyHRP  = "acct_xvk"
)

// ExtendedKeyOpts is the struct given to
// ExtendedPrivateKey and ExtendedPublicKey methods
type ExtendedKeyOpts struct {
	Account uint32
}

func (o ExtendedKeyOpts) validate() error {
	if o.Account > MaxHardenedValue {
		return ErrOutOfRangeDerivationPathAccount
	}
	return nil
}

// ExtendedPrivateKey returns the extended private key in bech32 format
// for the provided account index
func (w *Wallet) ExtendedPrivateKey(opts ExtendedKeyOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if err := w.validate(); err != nil {
		return "", err
	}

	xprv, err := w.masterKey.Child(HardenedKeyStart + opts.Account)
	if err != nil {
		return "", err
	}

	return encodeBech32(accountPrivateKeyHRP, xprv.Serialize())
}

// ExtendedPublicKey returns the extended public key in bech32 format
// for the provided account index
func (w *Wallet) ExtendedPublicKey(opts ExtendedKeyOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if err := w.validate(); err != nil {
		return "", err
	}

	xprv, err := w.masterKey.Child(HardenedKeyStart + opts.Account)
	if err != nil {
		return "", err
	}

	xpub := xprv.Neuter()
	return encodeBech32(accountPublicKeyHRP, xpub.Serialize())
}

// DeriveSigningKeyPairOpts is the struct given to DeriveSigningKeyPair method
type DeriveSigningKeyPairOpts struct {
	DerivationPath string
}

func (o DeriveSigningKeyPairOpts) validate() error {
	derivationPath, err := ParseDerivationPath(o.DerivationPath)
	if err != nil {
		return err
	}

	err = checkDerivationPath(derivationPath)
	if err != nil {
		return err
	}

	return nil
}

// DeriveSigningKeyPair derives the key pair of the provided derivation path
func (w *Wallet) DeriveSigningKeyPair(opts DeriveSigningKeyPairOpts) (
	*ExtendedKey,
	[]byte,
	error,
) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}
	if err := w.validate(); err != nil {
		return nil, nil, err
	}

	derivationPath, _ := ParseDerivationPath(opts.DerivationPath)
	privateKey, err := w.masterKey.Derive(derivationPath)
	if err != nil {
		return nil, nil, err
	}

	return privateKey, privateKey.PublicKey(), nil
}

// DeriveAddressOpts is the struct given to the
// DeriveBaseAddress, DeriveEnterpriseAddress and DeriveStakeAddress methods
type DeriveAddressOpts struct {
	Account      uint32
	AddressIndex uint32
	Network      *network.Network
}

func (o DeriveAddressOpts) validate() error {
	if o.Account > MaxHardenedValue {
		return ErrOutOfRangeDerivationPathAccount
	}
	if o.AddressIndex >= HardenedKeyStart {
		return ErrInvalidDerivationPath
	}
	if o.Network == nil {
		return ErrNullNetwork
	}
	return nil
}

// DeriveBaseAddress derives both the spending and staking pubkeys of the
// provided account to then generate the corresponding base address
func (w *Wallet) DeriveBaseAddress(opts DeriveAddressOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if err := w.validate(); err != nil {
		return "", err
	}

	paymentKey, err := w.masterKey.Derive(DerivationPath{
		HardenedKeyStart + opts.Account, PaymentRole, opts.AddressIndex,
	})
	if err != nil {
		return "", err
	}
	stakeKey, err := w.masterKey.Derive(DerivationPath{
		HardenedKeyStart + opts.Account, StakeRole, 0,
	})
	if err != nil {
		return "", err
	}

	return EncodeBaseAddress(
		paymentKey.PublicKeyHash(), stakeKey.PublicKeyHash(), opts.Network,
	)
}

// DeriveEnterpriseAddress derives the spending pubkey of the provided account
// to then generate the corresponding enterprise address. Enterprise addresses
// carry no staking credential
func (w *Wallet) DeriveEnterpriseAddress(opts DeriveAddressOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if err := w.validate(); err != nil {
		return "", err
	}

	paymentKey, err := w.masterKey.Derive(DerivationPath{
		HardenedKeyStart + opts.Account, PaymentRole, opts.AddressIndex,
	})
	if err != nil {
		return "", err
	}

	return EncodeEnterpriseAddress(paymentKey.PublicKeyHash(), opts.Network)
}

// DeriveStakeAddress derives the staking pubkey of the provided account to
// then generate the corresponding reward address
func (w *Wallet) DeriveStakeAddress(opts DeriveAddressOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if err := w.validate(); err != nil {
		return "", err
	}

	stakeKey, err := w.masterKey.Derive(DerivationPath{
		HardenedKeyStart + opts.Account, StakeRole, 0,
	})
	if err != nil {
		return "", err
	}

	return EncodeStakeAddress(stakeKey.PublicKeyHash(), opts.Network)
}

func checkDerivationPath(path DerivationPath) error {
	if len(path) != 3 {
		return ErrInvalidDerivationPathLength
	}
	// first elem must be hardened!
	if path[0] < HardenedKeyStart {
		return ErrInvalidDerivationPathAccount
	}
	return nil
}
