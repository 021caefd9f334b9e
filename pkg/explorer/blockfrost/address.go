package blockfrost

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lovelace-labs/ballast/pkg/explorer"
)

func (b *blockfrost) GetBalance(addr string) (uint64, error) {
	url := fmt.Sprintf("%s/addresses/%s", b.apiURL, addr)
	status, resp, err := b.client.NewHTTPRequest("GET", url, "", b.headers())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", explorer.ErrNetworkUnavailable, err)
	}
	// addresses that never appeared on chain are not indexed
	if status == http.StatusNotFound {
		return 0, nil
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf(resp)
	}

	var info addressInfo
	if err := json.Unmarshal([]byte(resp), &info); err != nil {
		return 0, fmt.Errorf("error on retrieving balance: %v", err)
	}

	return info.lovelaceBalance()
}

func (b *blockfrost) GetUnspents(addr string) ([]explorer.Utxo, error) {
	url := fmt.Sprintf("%s/addresses/%s/utxos", b.apiURL, addr)
	status, resp, err := b.client.NewHTTPRequest("GET", url, "", b.headers())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", explorer.ErrNetworkUnavailable, err)
	}
	if status == http.StatusNotFound {
		return []explorer.Utxo{}, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf(resp)
	}

	var outs []addressUtxo
	if err := json.Unmarshal([]byte(resp), &outs); err != nil {
		return nil, fmt.Errorf("error on retrieving utxos: %v", err)
	}

	unspents := make([]explorer.Utxo, 0, len(outs))
	for i := range outs {
		unspent, err := outs[i].toUtxo()
		if err != nil {
			return nil, fmt.Errorf("error on retrieving utxos: %v", err)
		}
		unspents = append(unspents, unspent)
	}

	return unspents, nil
}
