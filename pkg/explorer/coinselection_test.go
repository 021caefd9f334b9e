package explorer

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUnspents(t *testing.T) {
	type args struct {
		utxos        []Utxo
		targetAmount uint64
		feeReserve   uint64
	}
	tests := []struct {
		name      string
		args      args
		wantCoins int
		wantTotal uint64
	}{
		{
			name: "first utxo covers target and fee",
			args: args{
				utxos: []Utxo{
					NewUtxo(testTxHash(1), 0, 5000000, nil),
					NewUtxo(testTxHash(2), 1, 2000000, nil),
				},
				targetAmount: 1000000,
				feeReserve:   200000,
			},
			wantCoins: 1,
			wantTotal: 5000000,
		},
		{
			name: "accumulates utxos until the target is covered",
			args: args{
				utxos: []Utxo{
					NewUtxo(testTxHash(1), 0, 500000, nil),
					NewUtxo(testTxHash(2), 0, 400000, nil),
					NewUtxo(testTxHash(3), 0, 400000, nil),
				},
				targetAmount: 1000000,
				feeReserve:   200000,
			},
			wantCoins: 3,
			wantTotal: 1300000,
		},
		{
			name: "skips utxos locking native assets",
			args: args{
				utxos: []Utxo{
					NewUtxo(testTxHash(1), 0, 10000000, map[string]uint64{
						"b0d07d45fe9514f80213f4020e5a61241458be626841cde717cb38a76e7574636f696e": 42,
					}),
					NewUtxo(testTxHash(2), 0, 2000000, nil),
				},
				targetAmount: 1000000,
				feeReserve:   200000,
			},
			wantCoins: 1,
			wantTotal: 2000000,
		},
		{
			name: "exact cover",
			args: args{
				utxos: []Utxo{
					NewUtxo(testTxHash(1), 0, 1200000, nil),
				},
				targetAmount: 1000000,
				feeReserve:   200000,
			},
			wantCoins: 1,
			wantTotal: 1200000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coins, total, err := SelectUnspents(
				tt.args.utxos, tt.args.targetAmount, tt.args.feeReserve,
			)
			require.NoError(t, err)
			assert.Len(t, coins, tt.wantCoins)
			assert.Equal(t, tt.wantTotal, total)
			for _, coin := range coins {
				assert.Empty(t, coin.Assets())
			}
		})
	}
}

func TestFailingSelectUnspents(t *testing.T) {
	tests := []struct {
		name  string
		utxos []Utxo
	}{
		{
			name:  "no utxos",
			utxos: []Utxo{},
		},
		{
			name: "total amount does not cover target",
			utxos: []Utxo{
				NewUtxo(testTxHash(1), 0, 500000, nil),
				NewUtxo(testTxHash(2), 0, 500000, nil),
			},
		},
		{
			name: "only asset utxos are available",
			utxos: []Utxo{
				NewUtxo(testTxHash(1), 0, 10000000, map[string]uint64{
					"b0d07d45fe9514f80213f4020e5a61241458be626841cde717cb38a76e7574636f696e": 1,
				}),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coins, total, err := SelectUnspents(tt.utxos, 1000000, 200000)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInsufficientFunds)
			assert.Nil(t, coins)
			assert.Zero(t, total)
		})
	}
}

func TestUtxoParse(t *testing.T) {
	u := NewUtxo(testTxHash(7), 3, 1000000, nil)

	in, err := u.Parse()
	require.NoError(t, err)
	require.NotNil(t, in)

	assert.Equal(t, uint16(3), in.Index)
}

func testTxHash(b byte) string {
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = b
	}
	return hex.EncodeToString(buf)
}
