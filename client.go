package pulse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pulsesocial/pulse-go/headers"
)

const defaultBaseURL = "http://localhost:8000/api"
const defaultUserAgent = "pulse-go/" + Version

// TokenSource yields the bearer credential attached to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource backed by a fixed credential.
type StaticToken string

// Token implements TokenSource. A "Bearer " prefix, if present, is stripped
// so the header is never doubled.
func (t StaticToken) Token(context.Context) (string, error) {
	token := strings.TrimSpace(string(t))
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token, nil
}

// Config wires the base URL, credential source, and telemetry for the API client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
	Telemetry  TelemetryHooks
	UserAgent  string
}

// Client is the single choke point through which every Pulse API call is
// issued. It attaches the bearer credential, performs the request, and
// normalizes error payloads into APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	telemetry  TelemetryHooks
	userAgent  string

	// Grouped service clients.
	Auth     *AuthClient
	Users    *UsersClient
	Posts    *PostsClient
	Hashtags *HashtagsClient
	Images   *ImagesClient
	AI       *AIClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
// Tokens may be nil; such a client only reaches public endpoints.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:    normalized,
		httpClient: httpClient,
		tokens:     cfg.Tokens,
		telemetry:  cfg.Telemetry,
		userAgent:  ua,
	}
	client.Auth = &AuthClient{client: client}
	client.Users = &UsersClient{client: client}
	client.Posts = &PostsClient{client: client}
	client.Hashtags = &HashtagsClient{client: client}
	client.Images = &ImagesClient{client: client}
	client.AI = &AIClient{client: client}
	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("pulse: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("pulse: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("pulse: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("pulse: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	injectTraceparent(ctx, req)
	return req, nil
}

// newFormRequest builds a form-encoded POST. The token endpoint requires
// this encoding instead of JSON.
func (c *Client) newFormRequest(ctx context.Context, path string, form url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	injectTraceparent(ctx, req)
	return req, nil
}

func (c *Client) prepare(req *http.Request) error {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set(headers.Client, c.userAgent)
	}
	if req.Header.Get(headers.RequestID) == "" {
		req.Header.Set(headers.RequestID, uuid.NewString())
	}
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token(req.Context())
	if err != nil {
		return fmt.Errorf("pulse: token source: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	if err := c.prepare(req); err != nil {
		return nil, err
	}
	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(req.Context(), req)
	}
	c.telemetry.log(req.Context(), LogLevelInfo, "http_request", map[string]any{
		"method": req.Method,
		"url":    req.URL.String(),
	})
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(req.Context(), req, resp, err, time.Since(start))
	}
	c.telemetry.metric(req.Context(), "pulse_http_request_latency_ms", float64(time.Since(start).Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	return resp, nil
}

// sendAndDecode issues a JSON request and decodes the response into out.
// A nil out discards the body.
func (c *Client) sendAndDecode(ctx context.Context, method, path string, payload any, out any) error {
	req, err := c.newJSONRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	return drainBody(resp, out)
}

// drainBody decodes a successful response into out and always closes the
// body. A 204 returns immediately without touching the body. An empty or
// malformed 2xx body leaves out at its zero value rather than failing.
func drainBody(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("pulse: read response: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	_ = json.Unmarshal(data, out)
	return nil
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
