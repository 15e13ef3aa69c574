package pulse

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pulsesocial/pulse-go/routes"
)

// defaultRole is what newly registered accounts are assigned when the caller
// does not set one.
const defaultRole = "user"

// AuthClient issues the raw authentication requests. Most callers want the
// Session store instead, which persists the credential and hydrates the
// profile.
type AuthClient struct {
	client *Client
}

func (c *AuthClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("pulse: auth client not initialized")
	}
	return nil
}

// Token exchanges a username and password for a bearer token. The endpoint
// takes a form-encoded body, not JSON.
func (c *AuthClient) Token(ctx context.Context, username, password string) (TokenResponse, error) {
	if err := c.ensureInitialized(); err != nil {
		return TokenResponse{}, err
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return TokenResponse{}, fmt.Errorf("pulse: username and password are required")
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.client.newFormRequest(ctx, routes.AuthToken, form)
	if err != nil {
		return TokenResponse{}, err
	}
	resp, err := c.client.send(req)
	if err != nil {
		return TokenResponse{}, err
	}
	var tok TokenResponse
	if err := drainBody(resp, &tok); err != nil {
		return TokenResponse{}, err
	}
	return tok, nil
}

// Register creates a new account. It does not authenticate; log in afterwards.
func (c *AuthClient) Register(ctx context.Context, req RegisterRequest) error {
	if err := c.ensureInitialized(); err != nil {
		return err
	}
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("pulse: username is required")
	}
	if req.Password == "" {
		return fmt.Errorf("pulse: password is required")
	}
	if req.Role == "" {
		req.Role = defaultRole
	}
	return c.client.sendAndDecode(ctx, http.MethodPost, routes.AuthRegister, req, nil)
}
