// Package mapbox provides Mapbox-hosted base layers for the tectonic map and
// a token check used at startup to decide whether to offer them.
package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultAPIBase = "https://api.mapbox.com"

// Client talks to the Mapbox token API.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a Mapbox client for the given access token.
func NewClient(token string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultAPIBase,
		logger:  logger,
	}
}

// CheckToken asks Mapbox whether the token is usable. It returns the status
// code reported by the API (e.g. "TokenValid", "TokenExpired") and whether
// that code means the token can be used for tile requests.
func (c *Client) CheckToken(ctx context.Context) (string, bool, error) {
	u := fmt.Sprintf("%s/tokens/v2?%s", c.baseURL, url.Values{"access_token": {c.token}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("token check request: %w", err)
	}
	defer resp.Body.Close()

	// The token API answers 401 with a JSON body for invalid tokens, so only
	// other statuses are transport level failures.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnauthorized {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", false, fmt.Errorf("mapbox API error: status %d: %s", resp.StatusCode, body)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", false, fmt.Errorf("decode response: %w", err)
	}
	return tr.Code, tr.Code == "TokenValid", nil
}

// Mapbox API response types.

type tokenResponse struct {
	Code  string `json:"code"`
	Token struct {
		Usage string `json:"usage"`
		User  string `json:"user"`
	} `json:"token"`
}
