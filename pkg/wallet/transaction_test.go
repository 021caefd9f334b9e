package wallet

import (
	"crypto/ed25519"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/lovelace-labs/ballast/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTxBody(t *testing.T) {
	outputAddr, changeAddr := newTestAddresses(t)
	inputs := newTestInputs(t)

	body, err := NewTxBody(NewTxBodyOpts{
		Inputs:        inputs,
		TotalInput:    5000000,
		OutputAddress: outputAddr,
		OutputAmount:  1000000,
		ChangeAddress: changeAddr,
		Fee:           200000,
		TTL:           42010000,
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 2, len(body.Outputs))
	assert.Equal(t, uint64(1000000), body.Outputs[0].Amount)
	assert.Equal(t, uint64(3800000), body.Outputs[1].Amount)
	assert.Equal(t, uint64(200000), body.Fee)
	assert.Equal(t, uint64(42010000), body.TTL)

	outputInfo, _ := DecodeAddress(outputAddr)
	changeInfo, _ := DecodeAddress(changeAddr)
	assert.Equal(t, outputInfo.Bytes(), body.Outputs[0].Address)
	assert.Equal(t, changeInfo.Bytes(), body.Outputs[1].Address)

	// value is conserved
	totalOutput := body.Fee
	for _, out := range body.Outputs {
		totalOutput += out.Amount
	}
	assert.Equal(t, uint64(5000000), totalOutput)
}

func TestNewTxBodyWithoutChange(t *testing.T) {
	outputAddr, changeAddr := newTestAddresses(t)
	inputs := newTestInputs(t)

	body, err := NewTxBody(NewTxBodyOpts{
		Inputs:        inputs,
		TotalInput:    1200000,
		OutputAddress: outputAddr,
		OutputAmount:  1000000,
		ChangeAddress: changeAddr,
		Fee:           200000,
		TTL:           42010000,
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 1, len(body.Outputs))
	assert.Equal(t, uint64(1000000), body.Outputs[0].Amount)
}

func TestNewTxBodySortsInputs(t *testing.T) {
	outputAddr, changeAddr := newTestAddresses(t)

	bbInput, err := NewTxInput(strings.Repeat("bb", 32), 0)
	require.NoError(t, err)
	aaInput, err := NewTxInput(strings.Repeat("aa", 32), 1)
	require.NoError(t, err)
	aaFirstInput, err := NewTxInput(strings.Repeat("aa", 32), 0)
	require.NoError(t, err)

	body, err := NewTxBody(NewTxBodyOpts{
		Inputs:        []TxInput{*bbInput, *aaInput, *aaFirstInput},
		TotalInput:    3000000,
		OutputAddress: outputAddr,
		OutputAmount:  1000000,
		ChangeAddress: changeAddr,
		Fee:           200000,
		TTL:           42010000,
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, []TxInput{*aaFirstInput, *aaInput, *bbInput}, body.Inputs)
}

func TestFailingNewTxBody(t *testing.T) {
	outputAddr, changeAddr := newTestAddresses(t)
	inputs := newTestInputs(t)

	tests := []struct {
		opts NewTxBodyOpts
		err  error
	}{
		{
			opts: NewTxBodyOpts{
				TotalInput:    5000000,
				OutputAddress: outputAddr,
				OutputAmount:  1000000,
				ChangeAddress: changeAddr,
				Fee:           200000,
			},
			err: ErrEmptyInputs,
		},
		{
			opts: NewTxBodyOpts{
				Inputs:        inputs,
				TotalInput:    5000000,
				OutputAddress: outputAddr,
				ChangeAddress: changeAddr,
				Fee:           200000,
			},
			err: ErrZeroOutputAmount,
		},
		{
			opts: NewTxBodyOpts{
				Inputs:        inputs,
				TotalInput:    5000000,
				OutputAddress: "notanaddress",
				OutputAmount:  1000000,
				ChangeAddress: changeAddr,
				Fee:           200000,
			},
			err: ErrInvalidOutputAddress,
		},
		{
			opts: NewTxBodyOpts{
				Inputs:        inputs,
				TotalInput:    5000000,
				OutputAddress: outputAddr,
				OutputAmount:  1000000,
				Fee:           200000,
			},
			err: ErrNullChangeAddress,
		},
		{
			opts: NewTxBodyOpts{
				Inputs:        inputs,
				TotalInput:    5000000,
				OutputAddress: outputAddr,
				OutputAmount:  1000000,
				ChangeAddress: "notanaddress",
				Fee:           200000,
			},
			err: ErrInvalidChangeAddress,
		},
		{
			opts: NewTxBodyOpts{
				Inputs:        inputs,
				TotalInput:    1100000,
				OutputAddress: outputAddr,
				OutputAmount:  1000000,
				ChangeAddress: changeAddr,
				Fee:           200000,
			},
			err: ErrInsufficientInputAmount,
		},
	}
	for _, tt := range tests {
		_, err := NewTxBody(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}

func TestFailingNewTxInput(t *testing.T) {
	tests := []struct {
		hash string
	}{
		{""},
		{"notanhexstring"},
		{strings.Repeat("ab", 31)},
		{strings.Repeat("ab", 33)},
	}
	for _, tt := range tests {
		_, err := NewTxInput(tt.hash, 0)
		assert.Equal(t, ErrInvalidTxHash, err)
	}
}

func TestSignTx(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	body := newTestBody(t, wallet)

	tx, err := wallet.SignTx(SignTxOpts{
		Body:            body,
		DerivationPaths: []string{"0'/0/0"},
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, true, tx.IsValid)
	assert.Nil(t, tx.AuxiliaryData)
	require.Equal(t, 1, len(tx.WitnessSet.VKeyWitnesses))

	witness := tx.WitnessSet.VKeyWitnesses[0]
	_, pubkey, err := wallet.DeriveSigningKeyPair(DeriveSigningKeyPairOpts{
		DerivationPath: "0'/0/0",
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, pubkey, witness.VKey)

	hash, err := body.Hash()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, ed25519.Verify(
		ed25519.PublicKey(witness.VKey), hash, witness.Signature,
	))
}

func TestFailingSignTx(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	body := newTestBody(t, wallet)

	tests := []struct {
		opts SignTxOpts
		err  error
	}{
		{
			opts: SignTxOpts{
				DerivationPaths: []string{"0'/0/0"},
			},
			err: ErrNullBody,
		},
		{
			opts: SignTxOpts{
				Body: body,
			},
			err: ErrEmptyDerivationPaths,
		},
	}
	for _, tt := range tests {
		_, err := wallet.SignTx(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}

func TestTxIDExcludesWitnesses(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	otherWallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	body := newTestBody(t, wallet)

	tx, err := wallet.SignTx(SignTxOpts{
		Body:            body,
		DerivationPaths: []string{"0'/0/0"},
	})
	if err != nil {
		t.Fatal(err)
	}
	otherTx, err := otherWallet.SignTx(SignTxOpts{
		Body:            body,
		DerivationPaths: []string{"0'/0/0"},
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.NotEqual(t, tx.WitnessSet, otherTx.WitnessSet)

	txid, err := tx.TxID()
	if err != nil {
		t.Fatal(err)
	}
	otherTxid, err := otherTx.TxID()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, txid, otherTxid)

	hash, err := body.Hash()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, hex.EncodeToString(hash), txid)
}

func TestTxSerializationRoundTrip(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	body := newTestBody(t, wallet)

	tx, err := wallet.SignTx(SignTxOpts{
		Body:            body,
		DerivationPaths: []string{"0'/0/0"},
	})
	if err != nil {
		t.Fatal(err)
	}

	serialized, err := tx.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, len(serialized) > 0)

	parsedTx, err := DeserializeTx(serialized)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, tx.Body, parsedTx.Body)
	assert.Equal(t, tx.WitnessSet, parsedTx.WitnessSet)
	assert.Equal(t, tx.IsValid, parsedTx.IsValid)

	reserialized, err := parsedTx.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, serialized, reserialized)

	// a second serialization of the original is byte for byte identical too
	otherSerialized, err := tx.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, serialized, otherSerialized)
}

func TestFailingDeserializeTx(t *testing.T) {
	_, err := DeserializeTx([]byte("not a cbor transaction"))
	assert.NotNil(t, err)
}

func newTestAddresses(t *testing.T) (string, string) {
	t.Helper()

	wallet, err := newTestWallet()
	require.NoError(t, err)
	outputAddr, err := wallet.DeriveBaseAddress(DeriveAddressOpts{
		Network: &network.Preprod,
	})
	require.NoError(t, err)
	changeAddr, err := wallet.DeriveBaseAddress(DeriveAddressOpts{
		AddressIndex: 1,
		Network:      &network.Preprod,
	})
	require.NoError(t, err)

	return outputAddr, changeAddr
}

func newTestInputs(t *testing.T) []TxInput {
	t.Helper()

	firstInput, err := NewTxInput(strings.Repeat("01", 32), 0)
	require.NoError(t, err)
	secondInput, err := NewTxInput(strings.Repeat("02", 32), 1)
	require.NoError(t, err)

	return []TxInput{*firstInput, *secondInput}
}

func newTestBody(t *testing.T, w *Wallet) *TxBody {
	t.Helper()

	outputAddr, err := w.DeriveBaseAddress(DeriveAddressOpts{
		Network: &network.Preprod,
	})
	require.NoError(t, err)
	changeAddr, err := w.DeriveBaseAddress(DeriveAddressOpts{
		AddressIndex: 1,
		Network:      &network.Preprod,
	})
	require.NoError(t, err)

	body, err := NewTxBody(NewTxBodyOpts{
		Inputs:        newTestInputs(t),
		TotalInput:    5000000,
		OutputAddress: outputAddr,
		OutputAmount:  1000000,
		ChangeAddress: changeAddr,
		Fee:           200000,
		TTL:           42010000,
	})
	require.NoError(t, err)

	return body
}
