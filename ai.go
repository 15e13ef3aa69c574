package pulse

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pulsesocial/pulse-go/routes"
)

// AIClient provides AI-assisted drafting.
//
// Example:
//
//	draft, err := client.AI.GeneratePost(ctx, pulse.GeneratePostRequest{
//	    Topic:     "shipping a side project",
//	    Tone:      "friendly",
//	    MaxLength: 280,
//	})
//	fmt.Println(draft.Content)
type AIClient struct {
	client *Client
}

func (c *AIClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("pulse: ai client not initialized")
	}
	return nil
}

// GeneratePost drafts a post from a topic. Tone and audience are optional;
// the backend substitutes its own defaults.
func (c *AIClient) GeneratePost(ctx context.Context, req GeneratePostRequest) (GeneratePostResponse, error) {
	if err := c.ensureInitialized(); err != nil {
		return GeneratePostResponse{}, err
	}
	if strings.TrimSpace(req.Topic) == "" {
		return GeneratePostResponse{}, fmt.Errorf("pulse: topic is required")
	}
	var resp GeneratePostResponse
	if err := c.client.sendAndDecode(ctx, http.MethodPost, routes.AIGeneratePost, req, &resp); err != nil {
		return GeneratePostResponse{}, err
	}
	return resp, nil
}

// RewritePost rewrites existing text. The backend returns the original text
// when its model call fails, so a successful response is not a guarantee the
// text changed.
func (c *AIClient) RewritePost(ctx context.Context, req RewritePostRequest) (RewritePostResponse, error) {
	if err := c.ensureInitialized(); err != nil {
		return RewritePostResponse{}, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return RewritePostResponse{}, fmt.Errorf("pulse: text is required")
	}
	if req.Mode == "" {
		req.Mode = RewriteModeGrammar
	}
	var resp RewritePostResponse
	if err := c.client.sendAndDecode(ctx, http.MethodPost, routes.AIRewritePost, req, &resp); err != nil {
		return RewritePostResponse{}, err
	}
	return resp, nil
}
