package wallet

import (
	"strings"
	"testing"

	"github.com/lovelace-labs/ballast/pkg/network"
	"github.com/stretchr/testify/assert"
)

func TestExtendedKey(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	opts := ExtendedKeyOpts{
		Account: 0,
	}

	xprv, err := wallet.ExtendedPrivateKey(opts)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, strings.HasPrefix(xprv, "acct_xsk1"))

	xpub, err := wallet.ExtendedPublicKey(opts)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, strings.HasPrefix(xpub, "acct_xvk1"))
	assert.NotEqual(t, xprv, xpub)
}

func TestFailingExtendedKey(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	opts := ExtendedKeyOpts{
		Account: MaxHardenedValue + 1,
	}

	_, err = wallet.ExtendedPrivateKey(opts)
	assert.Equal(t, ErrOutOfRangeDerivationPathAccount, err)

	_, err = wallet.ExtendedPublicKey(opts)
	assert.Equal(t, ErrOutOfRangeDerivationPathAccount, err)
}

func TestDeriveSigningKeyPair(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	opts := DeriveSigningKeyPairOpts{
		DerivationPath: "0'/0/0",
	}

	prvkey, pubkey, err := wallet.DeriveSigningKeyPair(opts)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, prvkey.IsPrivate())
	assert.Equal(t, PublicKeySize, len(pubkey))
	assert.Equal(t, prvkey.PublicKey(), pubkey)

	_, stakePubkey, err := wallet.DeriveSigningKeyPair(DeriveSigningKeyPairOpts{
		DerivationPath: "0'/2/0",
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEqual(t, pubkey, stakePubkey)
}

func TestFailingDeriveSigningKeyPair(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		err  error
	}{
		{"0/0/0", ErrInvalidDerivationPathAccount},
		{"0'/0", ErrInvalidDerivationPathLength},
		{"0'/0/0/0", ErrInvalidDerivationPathLength},
		{"", ErrNullDerivationPath},
	}
	for _, tt := range tests {
		opts := DeriveSigningKeyPairOpts{
			DerivationPath: tt.path,
		}
		_, _, err := wallet.DeriveSigningKeyPair(opts)
		assert.Equal(t, tt.err, err)
	}
}

func TestDeriveBaseAddress(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}

	addr, err := wallet.DeriveBaseAddress(DeriveAddressOpts{
		Network: &network.Preprod,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, strings.HasPrefix(addr, "addr_test1"))

	// deriving the same path again lands on the same address
	otherAddr, err := wallet.DeriveBaseAddress(DeriveAddressOpts{
		Network: &network.Preprod,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, addr, otherAddr)

	mainnetAddr, err := wallet.DeriveBaseAddress(DeriveAddressOpts{
		Network: &network.Mainnet,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, strings.HasPrefix(mainnetAddr, "addr1"))
	assert.NotEqual(t, addr, mainnetAddr)

	nextAddr, err := wallet.DeriveBaseAddress(DeriveAddressOpts{
		AddressIndex: 1,
		Network:      &network.Preprod,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEqual(t, addr, nextAddr)
}

func TestDeriveBaseAddressFromRestoredWallet(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	mnemonic, _ := wallet.Mnemonic()
	addr, err := wallet.DeriveBaseAddress(DeriveAddressOpts{
		Network: &network.Preprod,
	})
	if err != nil {
		t.Fatal(err)
	}

	restoredWallet, err := NewWalletFromMnemonic(NewWalletFromMnemonicOpts{
		Mnemonic: mnemonic,
	})
	if err != nil {
		t.Fatal(err)
	}
	restoredAddr, err := restoredWallet.DeriveBaseAddress(DeriveAddressOpts{
		Network: &network.Preprod,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, addr, restoredAddr)
}

func TestDeriveEnterpriseAndStakeAddress(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}

	enterpriseAddr, err := wallet.DeriveEnterpriseAddress(DeriveAddressOpts{
		Network: &network.Preprod,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, strings.HasPrefix(enterpriseAddr, "addr_test1"))

	stakeAddr, err := wallet.DeriveStakeAddress(DeriveAddressOpts{
		Network: &network.Preprod,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, strings.HasPrefix(stakeAddr, "stake_test1"))

	baseAddr, err := wallet.DeriveBaseAddress(DeriveAddressOpts{
		Network: &network.Preprod,
	})
	if err != nil {
		t.Fatal(err)
	}

	baseInfo, err := DecodeAddress(baseAddr)
	if err != nil {
		t.Fatal(err)
	}
	enterpriseInfo, err := DecodeAddress(enterpriseAddr)
	if err != nil {
		t.Fatal(err)
	}
	stakeInfo, err := DecodeAddress(stakeAddr)
	if err != nil {
		t.Fatal(err)
	}

	// all three addresses are built from the same two credentials
	assert.Equal(t, baseInfo.PaymentKeyHash, enterpriseInfo.PaymentKeyHash)
	assert.Equal(t, baseInfo.StakeKeyHash, stakeInfo.StakeKeyHash)
}

func TestFailingDeriveBaseAddress(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		opts DeriveAddressOpts
		err  error
	}{
		{
			opts: DeriveAddressOpts{},
			err:  ErrNullNetwork,
		},
		{
			opts: DeriveAddressOpts{
				Account: MaxHardenedValue + 1,
				Network: &network.Preprod,
			},
			err: ErrOutOfRangeDerivationPathAccount,
		},
		{
			opts: DeriveAddressOpts{
				AddressIndex: HardenedKeyStart,
				Network:      &network.Preprod,
			},
			err: ErrInvalidDerivationPath,
		},
	}
	for _, tt := range tests {
		_, err := wallet.DeriveBaseAddress(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}
