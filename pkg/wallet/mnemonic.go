package wallet

type NewMnemonicOpts struct {
	EntropySize int
}

func (o NewMnemonicOpts) validate() error {
	if o.EntropySize > 0 {
		if o.EntropySize < 128 || o.EntropySize > 256 || o.EntropySize%32 != 0 {
			return ErrInvalidEntropySize
		}
	}
	if o.EntropySize < 0 {
		return ErrInvalidEntropySize
	}
	return nil
}

// NewMnemonic returns a new mnemonic as a list of words
func NewMnemonic(opts NewMnemonicOpts) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.EntropySize == 0 {
		opts.EntropySize = 256
	}

	return generateMnemonic(opts.EntropySize)
}

// MnemonicToEntropy returns the entropy the provided mnemonic encodes.
// The mnemonic words must belong to the reference wordlist and the embedded
// checksum must match
func MnemonicToEntropy(mnemonic []string) ([]byte, error) {
	if len(mnemonic) <= 0 {
		return nil, ErrNullMnemonic
	}
	return entropyFromMnemonic(mnemonic)
}

// EntropyToMnemonic returns the mnemonic encoding of the provided entropy,
// the inverse of MnemonicToEntropy
func EntropyToMnemonic(entropy []byte) ([]string, error) {
	if len(entropy) <= 0 {
		return nil, ErrNullEntropy
	}
	return mnemonicFromEntropy(entropy)
}
