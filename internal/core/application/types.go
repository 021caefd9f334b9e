package application

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceInfo pairs the integer lovelace balance of an address with its
// human friendly ada representation.
type BalanceInfo struct {
	Lovelace  uint64
	Ada       decimal.Decimal
	UtxoCount int
}

func newBalanceInfo(lovelace uint64, utxoCount int) BalanceInfo {
	return BalanceInfo{
		Lovelace:  lovelace,
		Ada:       decimal.New(int64(lovelace), -6),
		UtxoCount: utxoCount,
	}
}

// ParseAda converts a decimal ada amount into lovelace. Amounts with a
// fraction smaller than one lovelace are rejected rather than rounded.
func ParseAda(amount string) (uint64, error) {
	ada, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount '%s': %v", amount, err)
	}

	lovelace := ada.Shift(6)
	if !lovelace.IsInteger() {
		return 0, fmt.Errorf(
			"amount '%s' is smaller than the base unit precision", amount,
		)
	}
	if lovelace.IsNegative() || lovelace.IsZero() {
		return 0, ErrNullTransferAmount
	}

	return uint64(lovelace.IntPart()), nil
}

// FormatAda renders a lovelace amount as a decimal ada string.
func FormatAda(lovelace uint64) string {
	return decimal.New(int64(lovelace), -6).String()
}
