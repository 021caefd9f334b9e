package blockfrost

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lovelace-labs/ballast/pkg/explorer"
)

func (b *blockfrost) GetLatestBlock() (*explorer.BlockInfo, error) {
	url := fmt.Sprintf("%s/blocks/latest", b.apiURL)
	status, resp, err := b.client.NewHTTPRequest("GET", url, "", b.headers())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", explorer.ErrNetworkUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf(resp)
	}

	var block latestBlock
	if err := json.Unmarshal([]byte(resp), &block); err != nil {
		return nil, fmt.Errorf("error on retrieving latest block: %v", err)
	}

	return &explorer.BlockInfo{
		Height: block.Height,
		Slot:   block.Slot,
		Epoch:  block.Epoch,
		Hash:   block.Hash,
	}, nil
}

func (b *blockfrost) GetProtocolParams(epoch uint64) (*explorer.ProtocolParams, error) {
	url := fmt.Sprintf("%s/epochs/%d/parameters", b.apiURL, epoch)
	status, resp, err := b.client.NewHTTPRequest("GET", url, "", b.headers())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", explorer.ErrNetworkUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf(resp)
	}

	var params epochParams
	if err := json.Unmarshal([]byte(resp), &params); err != nil {
		return nil, fmt.Errorf("error on retrieving protocol params: %v", err)
	}

	return &explorer.ProtocolParams{
		MinFeeA:   params.MinFeeA,
		MinFeeB:   params.MinFeeB,
		MaxTxSize: params.MaxTxSize,
	}, nil
}
