// Package wholesale fetches day-ahead consumption and production prices from
// a wholesale market HTTP API.
package wholesale

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/voltplan/voltplan/core/model"
)

// Client retrieves the current day-ahead price series. It implements
// prices.Provider.
type Client struct {
	url    string
	token  string
	client *http.Client
}

// New creates a market client for the given endpoint. An empty token skips
// the Authorization header.
func New(url, token string) *Client {
	return &Client{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Prices fetches and decodes the market response.
func (c *Client) Prices(ctx context.Context) (model.PriceSeries, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var marketResponse Response
	if err := json.NewDecoder(resp.Body).Decode(&marketResponse); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return marketResponse.Series()
}
