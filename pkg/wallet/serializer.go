package wallet

import (
	"github.com/fxamacker/cbor/v2"
)

// the ledger expects a canonical encoding, the same bytes must always come
// out of the same transaction
var (
	txEncMode cbor.EncMode
	txDecMode cbor.DecMode
)

func init() {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	txEncMode = encMode

	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	txDecMode = decMode
}

// Serialize returns the canonical binary encoding of the body
func (b *TxBody) Serialize() ([]byte, error) {
	return txEncMode.Marshal(b)
}

// Serialize returns the canonical binary encoding of the transaction
func (t *Tx) Serialize() ([]byte, error) {
	return txEncMode.Marshal(t)
}

// DeserializeTx parses a binary encoded transaction, the inverse of
// Serialize
func DeserializeTx(data []byte) (*Tx, error) {
	tx := &Tx{}
	if err := txDecMode.Unmarshal(data, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
