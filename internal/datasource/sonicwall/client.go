// Package sonicwall is the client for the SonicOS management API's
// reporting endpoint. The firewall reports finished counters; this client
// only moves them.
package sonicwall

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
	defaultTimeout    = 30 * time.Second
	maxBodySize       = 1 << 20 // 1 MiB
	reportingEndpoint = "/api/sonicos/reporting/dashboard"
)

type Client struct {
	BaseURL  string
	Username string
	Password string
	HTTP     *http.Client
}

// New creates a SonicOS API client. Base URL and credentials are
// required; a non-positive timeout falls back to the default.
func New(baseURL, username, password string, timeout time.Duration) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	username = strings.TrimSpace(username)

	if base == "" {
		return nil, errors.New("sonicwall base URL is required")
	}
	if username == "" || password == "" {
		return nil, errors.New("sonicwall credentials are required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		BaseURL:  base,
		Username: username,
		Password: password,
		HTTP:     &http.Client{Timeout: timeout},
	}, nil
}

// Kind implements datasource.Provider.
func (c *Client) Kind() string {
	return secops.KindSonicWall
}

// Fetch implements datasource.Provider.
func (c *Client) Fetch(ctx context.Context) (datasource.Snapshot, error) {
	data, raw, err := c.Snapshot(ctx)
	if err != nil {
		return datasource.Snapshot{}, err
	}
	return datasource.Snapshot{
		Kind:        secops.KindSonicWall,
		Payload:     raw,
		GeneratedAt: data.GeneratedAt,
	}, nil
}

// Snapshot fetches and decodes the firewall's reporting dashboard.
func (c *Client) Snapshot(ctx context.Context) (secops.SonicWallData, []byte, error) {
	if c.HTTP == nil {
		return secops.SonicWallData{}, nil, errors.New("sonicwall http client is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+reportingEndpoint, nil)
	if err != nil {
		return secops.SonicWallData{}, nil, err
	}
	req.SetBasicAuth(c.Username, c.Password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "soclens")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return secops.SonicWallData{}, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return secops.SonicWallData{}, nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return secops.SonicWallData{}, nil, errors.New("sonicwall api rejected credentials")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return secops.SonicWallData{}, nil, fmt.Errorf("sonicwall api failed: status=%d", resp.StatusCode)
	}

	var data secops.SonicWallData
	if err := json.Unmarshal(body, &data); err != nil {
		return secops.SonicWallData{}, nil, fmt.Errorf("sonicwall api payload: %w", err)
	}
	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now().UTC()
	}
	return data, body, nil
}
