// Package siemapi is the client for the SIEM analytics API. The API
// returns finished, pre-shaped dashboard data; this client only moves it.
package siemapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/soclens/soclens/internal/datasource"
	"github.com/soclens/soclens/internal/secops"
)

const (
	defaultTimeout   = 30 * time.Second
	maxBodySize      = 1 << 20 // 1 MiB
	snapshotEndpoint = "/api/v1/dashboard/siem"
)

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New creates a SIEM API client. baseURL and token are required; a
// non-positive timeout falls back to the default.
func New(baseURL, token string, timeout time.Duration) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	token = strings.TrimSpace(token)

	if base == "" {
		return nil, errors.New("siem api base URL is required")
	}
	if token == "" {
		return nil, errors.New("siem api token is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		BaseURL: base,
		Token:   token,
		HTTP:    &http.Client{Timeout: timeout},
	}, nil
}

// Kind implements datasource.Provider.
func (c *Client) Kind() string {
	return secops.KindSIEM
}

// Fetch implements datasource.Provider, returning the upstream payload
// verbatim alongside its generation timestamp.
func (c *Client) Fetch(ctx context.Context) (datasource.Snapshot, error) {
	data, raw, err := c.Snapshot(ctx)
	if err != nil {
		return datasource.Snapshot{}, err
	}
	return datasource.Snapshot{
		Kind:        secops.KindSIEM,
		Payload:     raw,
		GeneratedAt: data.GeneratedAt,
	}, nil
}

// Snapshot fetches and decodes the current SIEM dashboard snapshot.
func (c *Client) Snapshot(ctx context.Context) (secops.SIEMData, []byte, error) {
	if err := c.ensureClient(); err != nil {
		return secops.SIEMData{}, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+snapshotEndpoint, nil)
	if err != nil {
		return secops.SIEMData{}, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "soclens")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return secops.SIEMData{}, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return secops.SIEMData{}, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return secops.SIEMData{}, nil, fmt.Errorf("siem api failed: status=%d body=%s", resp.StatusCode, truncate(body, 256))
	}

	var data secops.SIEMData
	if err := json.Unmarshal(body, &data); err != nil {
		return secops.SIEMData{}, nil, fmt.Errorf("siem api payload: %w", err)
	}
	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now().UTC()
	}
	return data, body, nil
}

func (c *Client) ensureClient() error {
	if c.BaseURL == "" {
		return errors.New("siem api base URL is required")
	}
	if c.Token == "" {
		return errors.New("siem api token is required")
	}
	if c.HTTP == nil {
		return errors.New("siem api http client is not configured")
	}
	return nil
}

func truncate(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
