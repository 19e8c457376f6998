package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/devconnect-io/devconnect-api/internal/config"
)

// ErrNoRepos reports a non-200 answer from the GitHub API, which covers both
// unknown usernames and rejected credentials.
var ErrNoRepos = errors.New("no github repositories found")

type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		baseURL:      cfg.Github.APIURL,
		clientID:     cfg.Github.ClientID,
		clientSecret: cfg.Github.ClientSecret,
	}
}

// Repos fetches the five most recent repositories of a username and relays
// the upstream JSON untouched.
func (c *Client) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("per_page", "5")
	params.Set("sort", "created:asc")
	if c.clientID != "" {
		params.Set("client_id", c.clientID)
		params.Set("client_secret", c.clientSecret)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build github request: %w", err)
	}
	req.Header.Set("User-Agent", "devconnect-api")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoRepos
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read github response: %w", err)
	}

	return json.RawMessage(body), nil
}
