package application_test

import (
	"encoding/hex"
	"sync"

	"github.com/lovelace-labs/ballast/pkg/explorer"
	"github.com/lovelace-labs/ballast/pkg/wallet"
)

// fakeExplorer implements explorer.Service over in memory state and records
// every broadcasted transaction.
type fakeExplorer struct {
	balances   map[string]uint64
	unspents   map[string][]explorer.Utxo
	tip        explorer.BlockInfo
	params     explorer.ProtocolParams
	confirmed  map[string]bool
	broadcasts [][]byte
	mtx        sync.Mutex
}

func newFakeExplorer() *fakeExplorer {
	return &fakeExplorer{
		balances: map[string]uint64{},
		unspents: map[string][]explorer.Utxo{},
		tip: explorer.BlockInfo{
			Height: 15243593,
			Slot:   412162133,
			Epoch:  425,
			Hash:   "4ea1ba291e8eef538635a53e59fddba7810d1679631cc3aed7c8e6c4091a516a",
		},
		params: explorer.ProtocolParams{
			MinFeeA:   44,
			MinFeeB:   155381,
			MaxTxSize: 16384,
		},
		confirmed: map[string]bool{},
	}
}

func (f *fakeExplorer) fundAddress(addr string, amounts ...uint64) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	total := uint64(0)
	utxos := make([]explorer.Utxo, 0, len(amounts))
	for i, amount := range amounts {
		utxos = append(
			utxos,
			explorer.NewUtxo(testTxHash(byte(i+1)), uint32(i), amount, nil),
		)
		total += amount
	}
	f.balances[addr] = total
	f.unspents[addr] = utxos
}

func (f *fakeExplorer) GetBalance(addr string) (uint64, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.balances[addr], nil
}

func (f *fakeExplorer) GetUnspents(addr string) ([]explorer.Utxo, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.unspents[addr], nil
}

func (f *fakeExplorer) GetLatestBlock() (*explorer.BlockInfo, error) {
	tip := f.tip
	return &tip, nil
}

func (f *fakeExplorer) GetProtocolParams(_ uint64) (*explorer.ProtocolParams, error) {
	params := f.params
	return &params, nil
}

func (f *fakeExplorer) BroadcastTransaction(txBytes []byte) (string, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	f.broadcasts = append(f.broadcasts, txBytes)

	tx, err := wallet.DeserializeTx(txBytes)
	if err != nil {
		return "", err
	}
	return tx.TxID()
}

func (f *fakeExplorer) IsTransactionConfirmed(txid string) (bool, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.confirmed[txid], nil
}

func (f *fakeExplorer) markConfirmed(txid string) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.confirmed[txid] = true
}

func (f *fakeExplorer) broadcastCount() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return len(f.broadcasts)
}

func testTxHash(b byte) string {
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = b
	}
	return hex.EncodeToString(buf)
}
