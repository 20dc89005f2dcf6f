package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/victornavas/unified-api/pkg/logger"
)

// Unknown is returned whenever the country cannot be resolved.
const Unknown = "Unknown"

// Lookup resolves an IP to a country name, best effort. Implementations
// must never block longer than their configured timeout.
type Lookup interface {
	Country(ctx context.Context, ip string) string
}

// Client queries an ipapi.co-compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Country(ctx context.Context, ip string) string {
	if ip == "" {
		return Unknown
	}

	u := fmt.Sprintf("%s/%s/json/", c.baseURL, url.PathEscape(ip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Unknown
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithContext(ctx).Debug("geo lookup failed", "ip", ip, "error", err)
		return Unknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Unknown
	}

	var body struct {
		CountryName string `json:"country_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.CountryName == "" {
		return Unknown
	}
	return body.CountryName
}

var _ Lookup = (*Client)(nil)
