package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"
)

const requestTimeout = 30 * time.Second

// Client pairs an http.Client with a leaky bucket limiter so that calls
// against rate limited explorer APIs are paced instead of rejected.
type Client struct {
	httpClient *http.Client
	limiter    ratelimit.Limiter
}

// NewClient returns a Client that performs at most requestsPerSecond calls.
func NewClient(requestsPerSecond int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    ratelimit.New(requestsPerSecond),
	}
}

// NewHTTPRequest function builds http call
// @param method <string>: http method
// @param url <string>: URL http to call
// @return <string>, error
func (c *Client) NewHTTPRequest(
	method string, url string, bodyString string, header map[string]string,
) (int, string, error) {
	c.limiter.Take()

	switch method {
	case "GET":
		return c.get(url, header)
	case "POST":
		return c.post(url, bodyString, header)
	default:
		return 0, "", fmt.Errorf("verb not supported %s", method)
	}
}

func (c *Client) get(url string, header map[string]string) (int, string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, "", err
	}

	for key, value := range header {
		req.Header.Set(key, value)
	}

	rs, err := c.httpClient.Do(req)

	// process response
	if err != nil {
		return 0, "", err
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return 0, "", err
	}

	return rs.StatusCode, string(bodyBytes), nil
}

func (c *Client) post(url string, bodyString string, header map[string]string) (int, string, error) {
	body := strings.NewReader(bodyString)
	req, err := http.NewRequest("POST", url, body)
	if err != nil {
		return 0, "", err
	}

	for key, value := range header {
		req.Header.Set(key, value)
	}

	rs, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", errors.New("failed to perform request: " + err.Error())
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return 0, "", errors.New("failed to parse response body: " + err.Error())
	}

	return rs.StatusCode, string(bodyBytes), nil
}
