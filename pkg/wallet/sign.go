package wallet

import (
	"crypto/ed25519"
	"fmt"
)

// VKeyWitness pairs the public key of a spending credential with the
// signature it produced over the hash of a transaction body
type VKeyWitness struct {
	_         struct{} `cbor:",toarray"`
	VKey      []byte
	Signature []byte
}

// WitnessSet holds the verification key witnesses of a signed transaction
type WitnessSet struct {
	VKeyWitnesses []VKeyWitness `cbor:"0,keyasint,omitempty"`
}

// SignTxOpts is the struct given to SignTx method
type SignTxOpts struct {
	Body            *TxBody
	DerivationPaths []string
}

func (o SignTxOpts) validate() error {
	if o.Body == nil {
		return ErrNullBody
	}
	if len(o.DerivationPaths) <= 0 {
		return ErrEmptyDerivationPaths
	}

	for _, path := range o.DerivationPaths {
		derivationPath, err := ParseDerivationPath(path)
		if err != nil {
			return fmt.Errorf("invalid derivation path '%s': %v", path, err)
		}
		err = checkDerivationPath(derivationPath)
		if err != nil {
			return fmt.Errorf("invalid derivation path '%s': %v", path, err)
		}
	}

	return nil
}

// SignTx produces (and verifies) a witness for the hash of the provided body
// with the key pair of every provided derivation path, then assembles body
// and witnesses into the transaction ready for broadcast
func (w *Wallet) SignTx(opts SignTxOpts) (*Tx, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	hash, err := opts.Body.Hash()
	if err != nil {
		return nil, err
	}

	witnesses := make([]VKeyWitness, 0, len(opts.DerivationPaths))
	for _, path := range opts.DerivationPaths {
		witness, err := w.signBodyHash(hash, path)
		if err != nil {
			return nil, err
		}
		witnesses = append(witnesses, *witness)
	}

	return &Tx{
		Body:       *opts.Body,
		WitnessSet: WitnessSet{VKeyWitnesses: witnesses},
		IsValid:    true,
	}, nil
}

func (w *Wallet) signBodyHash(hash []byte, derivationPath string) (*VKeyWitness, error) {
	prvkey, pubkey, err := w.DeriveSigningKeyPair(DeriveSigningKeyPairOpts{
		DerivationPath: derivationPath,
	})
	if err != nil {
		return nil, err
	}

	signature, err := prvkey.Sign(hash)
	if err != nil {
		return nil, err
	}

	if !ed25519.Verify(ed25519.PublicKey(pubkey), hash, signature) {
		return nil, fmt.Errorf(
			"signature verification failed for derivation path '%s'",
			derivationPath,
		)
	}

	return &VKeyWitness{
		VKey:      pubkey,
		Signature: signature,
	}, nil
}
