package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transfer records a transaction submitted to the network.
type Transfer struct {
	ID          string
	TxID        string
	FromAddress string
	ToAddress   string
	Amount      uint64
	Fee         uint64
	Network     string
	CreatedAt   int64
}

// NewTransfer returns a new transfer record stamped with the current time.
func NewTransfer(
	txid, fromAddress, toAddress string, amount, fee uint64, network string,
) *Transfer {
	return &Transfer{
		ID:          uuid.New().String(),
		TxID:        txid,
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		Amount:      amount,
		Fee:         fee,
		Network:     network,
		CreatedAt:   time.Now().Unix(),
	}
}
