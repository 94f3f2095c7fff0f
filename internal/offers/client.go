// Package offers wraps the external offers service the catalog is
// sourced from. The service's record shape is not ours; decoding stays
// loose and normalization happens in the catalog adapter.
package offers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/config"
)

// Client fetches raw offers over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.OffersConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// ListOffers retrieves the full offers feed.
func (c *Client) ListOffers(ctx context.Context) ([]catalog.RawOffer, error) {
	payload, err := c.get(ctx, fmt.Sprintf("%s/offers", c.baseURL))
	if err != nil {
		return nil, err
	}
	return catalog.DecodeOffers(payload)
}

// GetOffer retrieves a single offer by its numeric id.
func (c *Client) GetOffer(ctx context.Context, id int64) (*catalog.RawOffer, error) {
	payload, err := c.get(ctx, fmt.Sprintf("%s/offers/%d", c.baseURL, id))
	if err != nil {
		return nil, err
	}

	return catalog.DecodeOffer(payload)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("offers service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("offers service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read offers response: %w", err)
	}
	return body, nil
}
