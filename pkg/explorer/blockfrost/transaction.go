package blockfrost

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lovelace-labs/ballast/pkg/explorer"
)

func (b *blockfrost) BroadcastTransaction(txBytes []byte) (string, error) {
	url := fmt.Sprintf("%s/tx/submit", b.apiURL)
	headers := b.headers()
	headers["Content-Type"] = "application/cbor"

	status, resp, err := b.client.NewHTTPRequest(
		"POST",
		url,
		string(txBytes),
		headers,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", explorer.ErrNetworkUnavailable, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: %s", explorer.ErrSubmissionRejected, resp)
	}

	// the API answers with the hash of the submitted tx as a json string
	var txid string
	if err := json.Unmarshal([]byte(resp), &txid); err != nil {
		return strings.Trim(resp, `"`), nil
	}

	return txid, nil
}

func (b *blockfrost) IsTransactionConfirmed(txid string) (bool, error) {
	url := fmt.Sprintf("%s/txs/%s", b.apiURL, txid)
	status, resp, err := b.client.NewHTTPRequest("GET", url, "", b.headers())
	if err != nil {
		return false, fmt.Errorf("%w: %v", explorer.ErrNetworkUnavailable, err)
	}
	// a tx that is not indexed yet is simply not confirmed
	if status == http.StatusNotFound {
		return false, nil
	}
	if status != http.StatusOK {
		return false, fmt.Errorf(resp)
	}

	var tx txDetails
	if err := json.Unmarshal([]byte(resp), &tx); err != nil {
		return false, fmt.Errorf("error on retrieving transaction: %v", err)
	}

	return len(tx.Block) > 0, nil
}
