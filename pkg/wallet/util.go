package wallet

import (
	"strings"

	"github.com/tyler-smith/go-bip39"
)

func generateMnemonic(entropySize int) ([]string, error) {
	entropy, err := bip39.NewEntropy(entropySize)
	if err != nil {
		return nil, err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, err
	}
	return strings.Split(mnemonic, " "), nil
}

func mnemonicFromEntropy(entropy []byte) ([]string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, ErrInvalidEntropySize
	}
	return strings.Split(mnemonic, " "), nil
}

func entropyFromMnemonic(mnemonic []string) ([]byte, error) {
	m := strings.Join(mnemonic, " ")
	entropy, err := bip39.EntropyFromMnemonic(m)
	if err != nil {
		return nil, ErrInvalidMnemonic
	}
	return entropy, nil
}

func isMnemonicValid(mnemonic []string) bool {
	m := strings.Join(mnemonic, " ")
	return bip39.IsMnemonicValid(m)
}

func generateMasterKey(entropy []byte) (*ExtendedKey, error) {
	masterKey, err := MasterKeyFromEntropy(entropy)
	if err != nil {
		return nil, err
	}
	return masterKey.Derive(DefaultBaseDerivationPath)
}
