package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect-io/devconnect-api/internal/config"
)

func testClient(baseURL string) *Client {
	cfg := config.Config{}
	cfg.Github.APIURL = baseURL
	cfg.Github.ClientID = "test-id"
	cfg.Github.ClientSecret = "test-secret"
	return NewClient(cfg)
}

func TestRepos_RelaysUpstreamJSON(t *testing.T) {
	var gotPath, gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"repo-one"}]`))
	}))
	defer srv.Close()

	body, err := testClient(srv.URL).Repos(context.Background(), "octocat")
	require.NoError(t, err)

	assert.JSONEq(t, `[{"name":"repo-one"}]`, string(body))
	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Contains(t, gotQuery, "per_page=5")
	assert.Contains(t, gotQuery, "client_id=test-id")
	assert.Equal(t, "devconnect-api", gotAgent)
}

func TestRepos_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Repos(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoRepos)
}

func TestRepos_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := testClient(srv.URL).Repos(context.Background(), "octocat")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRepos)
}
