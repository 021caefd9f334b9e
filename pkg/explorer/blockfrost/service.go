package blockfrost

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lovelace-labs/ballast/pkg/explorer"
	"github.com/lovelace-labs/ballast/pkg/httputil"
)

// Blockfrost caps free plans at 10 requests per second.
const requestsPerSecond = 10

type blockfrost struct {
	apiURL    string
	projectID string
	client    *httputil.Client
}

// NewService returns a new blockfrost service as an explorer.Service
// interface. The projectID is the API key attached to every request
// through the project_id header.
func NewService(apiURL, projectID string) (explorer.Service, error) {
	service := &blockfrost{
		apiURL:    apiURL,
		projectID: projectID,
		client:    httputil.NewClient(requestsPerSecond),
	}

	if err := service.healthCheck(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return service, nil
}

func (b *blockfrost) healthCheck() error {
	url := fmt.Sprintf("%s/health", b.apiURL)
	status, resp, err := b.client.NewHTTPRequest("GET", url, "", b.headers())
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf(resp)
	}

	var health struct {
		IsHealthy bool `json:"is_healthy"`
	}
	if err := json.Unmarshal([]byte(resp), &health); err != nil {
		return err
	}
	if !health.IsHealthy {
		return fmt.Errorf("explorer is out of sync with the network")
	}
	return nil
}

func (b *blockfrost) headers() map[string]string {
	return map[string]string{"project_id": b.projectID}
}
