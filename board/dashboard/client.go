package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tryanzu/orders/core/store"
)

// Listing is the part of a read API response the dashboard needs.
type Listing struct {
	Pagination store.Page `json:"pagination"`
	TotalPrice float64    `json:"total_price"`
}

// Reader runs one orders listing with the given query parameters.
type Reader interface {
	Orders(ctx context.Context, query url.Values) (Listing, error)
}

// Client calls the read API over HTTP.
type Client struct {
	URL  string
	HTTP *http.Client
}

// NewClient for the orders listing found at endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		URL:  endpoint,
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Orders(ctx context.Context, query url.Values) (listing Listing, err error) {
	endpoint, err := url.Parse(c.URL)
	if err != nil {
		return
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		err = fmt.Errorf("orders api responded %d for %s", res.StatusCode, endpoint.RawQuery)
		return
	}
	err = json.NewDecoder(res.Body).Decode(&listing)
	return
}
