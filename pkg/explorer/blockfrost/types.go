package blockfrost

import (
	"fmt"
	"strconv"

	"github.com/lovelace-labs/ballast/pkg/explorer"
)

const lovelaceUnit = "lovelace"

// txAmount is a single entry of the amount list attached to addresses and
// utxos. Quantity is returned as a string by the API to survive json
// number precision.
type txAmount struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

func (a txAmount) quantity() (uint64, error) {
	quantity, err := strconv.ParseUint(a.Quantity, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity for unit %s: %v", a.Unit, err)
	}
	return quantity, nil
}

type addressInfo struct {
	Address string     `json:"address"`
	Amount  []txAmount `json:"amount"`
	Type    string     `json:"type"`
}

func (i addressInfo) lovelaceBalance() (uint64, error) {
	balance := uint64(0)
	for _, entry := range i.Amount {
		if entry.Unit != lovelaceUnit {
			continue
		}
		quantity, err := entry.quantity()
		if err != nil {
			return 0, err
		}
		balance += quantity
	}
	return balance, nil
}

type addressUtxo struct {
	TxHash      string     `json:"tx_hash"`
	OutputIndex uint32     `json:"output_index"`
	Amount      []txAmount `json:"amount"`
	Block       string     `json:"block"`
}

func (u addressUtxo) toUtxo() (explorer.Utxo, error) {
	value := uint64(0)
	assets := map[string]uint64{}
	for _, entry := range u.Amount {
		quantity, err := entry.quantity()
		if err != nil {
			return nil, err
		}
		if entry.Unit == lovelaceUnit {
			value += quantity
			continue
		}
		assets[entry.Unit] = quantity
	}
	if len(assets) == 0 {
		assets = nil
	}

	return explorer.NewUtxo(u.TxHash, u.OutputIndex, value, assets), nil
}

type latestBlock struct {
	Hash   string `json:"hash"`
	Height uint64 `json:"height"`
	Slot   uint64 `json:"slot"`
	Epoch  uint64 `json:"epoch"`
}

type epochParams struct {
	MinFeeA   uint64 `json:"min_fee_a"`
	MinFeeB   uint64 `json:"min_fee_b"`
	MaxTxSize uint64 `json:"max_tx_size"`
}

type txDetails struct {
	Hash        string `json:"hash"`
	Block       string `json:"block"`
	BlockHeight uint64 `json:"block_height"`
}
