package wallet

import (
	"strings"
	"testing"

	"github.com/lovelace-labs/ballast/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBaseAddress(t *testing.T) {
	paymentKeyHash, stakeKeyHash := testKeyHashes(t)

	tests := []struct {
		net    *network.Network
		prefix string
	}{
		{&network.Mainnet, "addr1"},
		{&network.Preprod, "addr_test1"},
		{&network.Preview, "addr_test1"},
	}
	for _, tt := range tests {
		addr, err := EncodeBaseAddress(paymentKeyHash, stakeKeyHash, tt.net)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, true, strings.HasPrefix(addr, tt.prefix))

		otherAddr, err := EncodeBaseAddress(paymentKeyHash, stakeKeyHash, tt.net)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, addr, otherAddr)

		info, err := DecodeAddress(addr)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, BaseAddress, info.Type)
		assert.Equal(t, tt.net.ID, info.NetworkID)
		assert.Equal(t, paymentKeyHash, info.PaymentKeyHash)
		assert.Equal(t, stakeKeyHash, info.StakeKeyHash)
		assert.Equal(t, 1+2*KeyHashSize, len(info.Bytes()))
	}
}

func TestEncodeDecodeEnterpriseAddress(t *testing.T) {
	paymentKeyHash, _ := testKeyHashes(t)

	addr, err := EncodeEnterpriseAddress(paymentKeyHash, &network.Preprod)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, strings.HasPrefix(addr, "addr_test1"))

	info, err := DecodeAddress(addr)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, EnterpriseAddress, info.Type)
	assert.Equal(t, network.Preprod.ID, info.NetworkID)
	assert.Equal(t, paymentKeyHash, info.PaymentKeyHash)
	assert.Nil(t, info.StakeKeyHash)
}

func TestEncodeDecodeStakeAddress(t *testing.T) {
	_, stakeKeyHash := testKeyHashes(t)

	tests := []struct {
		net    *network.Network
		prefix string
	}{
		{&network.Mainnet, "stake1"},
		{&network.Preprod, "stake_test1"},
	}
	for _, tt := range tests {
		addr, err := EncodeStakeAddress(stakeKeyHash, tt.net)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, true, strings.HasPrefix(addr, tt.prefix))

		info, err := DecodeAddress(addr)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, StakeAddress, info.Type)
		assert.Equal(t, stakeKeyHash, info.StakeKeyHash)
	}
}

func TestDistinctCredentialsGiveDistinctAddresses(t *testing.T) {
	paymentKeyHash, stakeKeyHash := testKeyHashes(t)

	addr, err := EncodeBaseAddress(paymentKeyHash, stakeKeyHash, &network.Preprod)
	if err != nil {
		t.Fatal(err)
	}
	swappedAddr, err := EncodeBaseAddress(stakeKeyHash, paymentKeyHash, &network.Preprod)
	if err != nil {
		t.Fatal(err)
	}
	mainnetAddr, err := EncodeBaseAddress(paymentKeyHash, stakeKeyHash, &network.Mainnet)
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEqual(t, addr, swappedAddr)
	assert.NotEqual(t, addr, mainnetAddr)
}

func TestFailingEncodeAddress(t *testing.T) {
	paymentKeyHash, stakeKeyHash := testKeyHashes(t)

	tests := []struct {
		paymentKeyHash []byte
		stakeKeyHash   []byte
		net            *network.Network
		err            error
	}{
		{paymentKeyHash, stakeKeyHash, nil, ErrNullNetwork},
		{nil, stakeKeyHash, &network.Preprod, ErrInvalidKeyHash},
		{paymentKeyHash[:20], stakeKeyHash, &network.Preprod, ErrInvalidKeyHash},
		{paymentKeyHash, nil, &network.Preprod, ErrInvalidKeyHash},
	}
	for _, tt := range tests {
		_, err := EncodeBaseAddress(tt.paymentKeyHash, tt.stakeKeyHash, tt.net)
		assert.Equal(t, tt.err, err)
	}
}

func TestFailingDecodeAddress(t *testing.T) {
	paymentKeyHash, stakeKeyHash := testKeyHashes(t)
	addr, err := EncodeBaseAddress(paymentKeyHash, stakeKeyHash, &network.Preprod)
	if err != nil {
		t.Fatal(err)
	}

	// corrupt the checksum by flipping the last character
	lastChar := addr[len(addr)-1]
	otherChar := byte('q')
	if lastChar == otherChar {
		otherChar = 'z'
	}
	corruptedAddr := addr[:len(addr)-1] + string(otherChar)

	// stake prefix with a base address payload
	stakeAddr, err := EncodeStakeAddress(stakeKeyHash, &network.Preprod)
	if err != nil {
		t.Fatal(err)
	}
	mismatchedAddr := "stake_test" + strings.TrimPrefix(addr, "addr_test")
	require.NotEqual(t, stakeAddr, mismatchedAddr)

	tests := []string{
		"",
		"notanaddress",
		corruptedAddr,
		mismatchedAddr,
	}
	for _, tt := range tests {
		_, err := DecodeAddress(tt)
		assert.Equal(t, ErrInvalidAddress, err)
	}
}

func testKeyHashes(t *testing.T) ([]byte, []byte) {
	t.Helper()

	masterKey, err := MasterKeyFromEntropy(testEntropy)
	require.NoError(t, err)
	paymentKey, err := masterKey.Derive(DerivationPath{
		HardenedKeyStart, PaymentRole, 0,
	})
	require.NoError(t, err)
	stakeKey, err := masterKey.Derive(DerivationPath{
		HardenedKeyStart, StakeRole, 0,
	})
	require.NoError(t, err)

	return paymentKey.PublicKeyHash(), stakeKey.PublicKeyHash()
}
