// Package upstream fetches the full product set from the remote catalog
// API. The endpoint takes a page parameter but the whole set lives on
// one page; all filtering, sorting and paging happens on our side.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"masterpos_server/structs"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

// envelope is the response contract of the catalog endpoint. The set of
// records always arrives under the "data" key.
type envelope struct {
	Data []structs.Product `json:"data"`
}

type Client struct {
	logger  *gecho.Logger
	http    *http.Client
	baseURL string
	page    int
}

func NewClient(logger *gecho.Logger, cfg *structs.UpstreamConfig) *Client {
	return &Client{
		logger:  logger,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		baseURL: cfg.BaseURL,
		page:    cfg.Page,
	}
}

// FetchProducts issues the single GET that loads the whole record set.
// There is no retry: a failed fetch is reported and the caller keeps
// whatever set it already has.
func (c *Client) FetchProducts(ctx context.Context) ([]structs.Product, error) {
	start := time.Now()
	url := fmt.Sprintf("%s?page=%d", c.baseURL, c.page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog responded with status %d", resp.StatusCode)
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	c.logger.Debug("Fetched product catalog",
		gecho.Field("count", len(body.Data)),
		gecho.Field("duration", time.Since(start)),
	)
	return body.Data, nil
}
