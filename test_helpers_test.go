package pulse

import (
	"net/http/httptest"
	"testing"
)

// newTestClient builds a client against the test server. An empty token
// leaves the client unauthenticated.
func newTestClient(t *testing.T, srv *httptest.Server, token string) *Client {
	t.Helper()
	cfg := Config{BaseURL: srv.URL}
	if token != "" {
		cfg.Tokens = StaticToken(token)
	}
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}
