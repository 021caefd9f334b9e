package wallet

import (
	"bytes"
	"encoding/hex"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// TxInput is the outpoint reference to the unspent output of a previous
// transaction
type TxInput struct {
	_      struct{} `cbor:",toarray"`
	TxHash []byte
	Index  uint16
}

// NewTxInput returns the input spending the output at the provided index of
// the transaction with the provided hash in hex format
func NewTxInput(hash string, index uint16) (*TxInput, error) {
	txHash, err := hex.DecodeString(hash)
	if err != nil || len(txHash) != 32 {
		return nil, ErrInvalidTxHash
	}
	return &TxInput{
		TxHash: txHash,
		Index:  index,
	}, nil
}

// TxOutput is the pair of a recipient address in binary format and the
// amount of lovelace it receives
type TxOutput struct {
	_       struct{} `cbor:",toarray"`
	Address []byte
	Amount  uint64
}

// TxBody is the unsigned part of a transaction. The struct is serialized as
// an integer-keyed map so that the binary representation matches the ledger
// wire format
type TxBody struct {
	Inputs  []TxInput  `cbor:"0,keyasint"`
	Outputs []TxOutput `cbor:"1,keyasint"`
	Fee     uint64     `cbor:"2,keyasint"`
	TTL     uint64     `cbor:"3,keyasint"`
}

// Tx is a signed transaction ready for broadcast
type Tx struct {
	_             struct{} `cbor:",toarray"`
	Body          TxBody
	WitnessSet    WitnessSet
	IsValid       bool
	AuxiliaryData interface{}
}

// NewTxBodyOpts is the struct given to the NewTxBody method
type NewTxBodyOpts struct {
	Inputs        []TxInput
	TotalInput    uint64
	OutputAddress string
	OutputAmount  uint64
	ChangeAddress string
	Fee           uint64
	TTL           uint64
}

func (o NewTxBodyOpts) validate() error {
	if len(o.Inputs) <= 0 {
		return ErrEmptyInputs
	}
	for _, in := range o.Inputs {
		if len(in.TxHash) != 32 {
			return ErrInvalidTxHash
		}
	}

	if o.OutputAmount == 0 {
		return ErrZeroOutputAmount
	}
	if _, err := DecodeAddress(o.OutputAddress); err != nil {
		return ErrInvalidOutputAddress
	}

	if len(o.ChangeAddress) <= 0 {
		return ErrNullChangeAddress
	}
	if _, err := DecodeAddress(o.ChangeAddress); err != nil {
		return ErrInvalidChangeAddress
	}

	if o.TotalInput < o.OutputAmount+o.Fee {
		return ErrInsufficientInputAmount
	}

	return nil
}

// NewTxBody crafts the body spending the provided inputs with an output
// paying the target amount to the recipient address. The eventual change is
// sent back to the change address, while a zero change adds no output at
// all. The returned body is guaranteed to be balanced, that is the total
// input amount matches the sum of the output amounts plus the fee
func NewTxBody(opts NewTxBodyOpts) (*TxBody, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	outputInfo, _ := DecodeAddress(opts.OutputAddress)
	outputs := []TxOutput{
		{Address: outputInfo.Bytes(), Amount: opts.OutputAmount},
	}

	change := opts.TotalInput - opts.OutputAmount - opts.Fee
	if change > 0 {
		changeInfo, _ := DecodeAddress(opts.ChangeAddress)
		outputs = append(outputs, TxOutput{
			Address: changeInfo.Bytes(),
			Amount:  change,
		})
	}

	inputs := make([]TxInput, len(opts.Inputs))
	copy(inputs, opts.Inputs)
	sortInputs(inputs)

	body := &TxBody{
		Inputs:  inputs,
		Outputs: outputs,
		Fee:     opts.Fee,
		TTL:     opts.TTL,
	}

	totalOutput := opts.Fee
	for _, out := range body.Outputs {
		totalOutput += out.Amount
	}
	if totalOutput != opts.TotalInput {
		return nil, ErrUnbalancedTransaction
	}

	return body, nil
}

// Hash returns the digest of the serialized body, the id the ledger knows
// the transaction by. Witnesses never contribute to it
func (b *TxBody) Hash() ([]byte, error) {
	serialized, err := b.Serialize()
	if err != nil {
		return nil, err
	}
	digest := blake2b.Sum256(serialized)
	return digest[:], nil
}

// TxID returns the hash of the transaction body in hex format
func (t *Tx) TxID() (string, error) {
	hash, err := t.Body.Hash()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash), nil
}

// inputs are sorted by tx hash first and index second so that equal input
// sets always produce the same body digest
func sortInputs(inputs []TxInput) {
	sort.Slice(inputs, func(i, j int) bool {
		if c := bytes.Compare(inputs[i].TxHash, inputs[j].TxHash); c != 0 {
			return c < 0
		}
		return inputs[i].Index < inputs[j].Index
	})
}
