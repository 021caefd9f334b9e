package explorer

import (
	"github.com/lovelace-labs/ballast/pkg/wallet"
)

// Utxo is the interface to be implemented by the unspent outputs returned
// by the explorer.
type Utxo interface {
	Hash() string
	Index() uint32
	Value() uint64
	Assets() map[string]uint64
	Parse() (*wallet.TxInput, error)
}

// NewUtxo returns a new utxo as an explorer.Utxo interface. Value is the
// lovelace amount of the output, while assets maps the unit of any native
// asset held by the output, ie. the concatenation of policy id and asset
// name, to its quantity.
func NewUtxo(
	hash string, index uint32, value uint64, assets map[string]uint64,
) Utxo {
	return utxo{
		UHash:   hash,
		UIndex:  index,
		UValue:  value,
		UAssets: assets,
	}
}

type utxo struct {
	UHash   string
	UIndex  uint32
	UValue  uint64
	UAssets map[string]uint64
}

func (u utxo) Hash() string {
	return u.UHash
}

func (u utxo) Index() uint32 {
	return u.UIndex
}

func (u utxo) Value() uint64 {
	return u.UValue
}

func (u utxo) Assets() map[string]uint64 {
	return u.UAssets
}

func (u utxo) Parse() (*wallet.TxInput, error) {
	return wallet.NewTxInput(u.UHash, uint16(u.UIndex))
}
