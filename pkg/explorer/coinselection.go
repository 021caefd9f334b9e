package explorer

import (
	"fmt"
)

// SelectUnspents performs a coin selection over the given list of Utxos and
// returns the subset of them covering targetAmount plus feeReserve, along
// with the total amount they lock. Utxos are consumed in the order they are
// given, first fit wins.
func SelectUnspents(
	utxos []Utxo,
	targetAmount, feeReserve uint64,
) (coins []Utxo, total uint64, err error) {
	target := targetAmount + feeReserve

	selectedUtxos := make([]Utxo, 0, len(utxos))
	for i := range utxos {
		utxo := utxos[i]
		// outputs carrying native assets are left untouched, spending them
		// here would burn the assets as an implicit fee
		if len(utxo.Assets()) > 0 {
			continue
		}

		selectedUtxos = append(selectedUtxos, utxo)
		total += utxo.Value()
		if total >= target {
			coins = selectedUtxos
			return
		}
	}

	err = fmt.Errorf(
		"%w: %d lovelace required, %d spendable", ErrInsufficientFunds,
		target, total,
	)
	total = 0
	return
}
