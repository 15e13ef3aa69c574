package pulse

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pulsesocial/pulse-go/routes"
)

// PostsClient provides methods for publishing and reading posts, comments,
// and likes.
//
// Example:
//
//	feed, err := client.Posts.Feed(ctx, pulse.PageOptions{Limit: 20})
//	for _, p := range feed.Items {
//	    fmt.Printf("@%s: %s\n", p.Owner.Username, p.Content)
//	}
type PostsClient struct {
	client *Client
}

func (c *PostsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("pulse: posts client not initialized")
	}
	return nil
}

// Create publishes a post and returns its id.
func (c *PostsClient) Create(ctx context.Context, req PostCreateRequest) (PostCreateResponse, error) {
	if err := c.ensureInitialized(); err != nil {
		return PostCreateResponse{}, err
	}
	if strings.TrimSpace(req.Content) == "" {
		return PostCreateResponse{}, fmt.Errorf("pulse: content is required")
	}
	if req.Source == "" {
		req.Source = PostSourceUser
	}
	var resp PostCreateResponse
	if err := c.client.sendAndDecode(ctx, http.MethodPost, routes.Posts, req, &resp); err != nil {
		return PostCreateResponse{}, err
	}
	return resp, nil
}

// Feed returns the public feed, newest first.
func (c *PostsClient) Feed(ctx context.Context, opts PageOptions) (Feed, error) {
	if err := c.ensureInitialized(); err != nil {
		return Feed{}, err
	}
	var feed Feed
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.PostsFeed+opts.query(), nil, &feed); err != nil {
		return Feed{}, err
	}
	return feed, nil
}

// Get returns a single post with its counts, images, and hashtags.
func (c *PostsClient) Get(ctx context.Context, postID int64) (Post, error) {
	if err := c.ensureInitialized(); err != nil {
		return Post{}, err
	}
	if postID <= 0 {
		return Post{}, fmt.Errorf("pulse: post_id is required")
	}
	var post Post
	path := fmt.Sprintf("/posts/%d", postID)
	if err := c.client.sendAndDecode(ctx, http.MethodGet, path, nil, &post); err != nil {
		return Post{}, err
	}
	return post, nil
}

// Delete removes one of the authenticated user's posts. The backend answers
// 204 on success.
func (c *PostsClient) Delete(ctx context.Context, postID int64) error {
	if err := c.ensureInitialized(); err != nil {
		return err
	}
	if postID <= 0 {
		return fmt.Errorf("pulse: post_id is required")
	}
	path := fmt.Sprintf("/posts/%d", postID)
	return c.client.sendAndDecode(ctx, http.MethodDelete, path, nil, nil)
}

// Comments returns a post's published comments, oldest first. The endpoint
// returns a bare array, not an items envelope.
func (c *PostsClient) Comments(ctx context.Context, postID int64, opts PageOptions) ([]Comment, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	if postID <= 0 {
		return nil, fmt.Errorf("pulse: post_id is required")
	}
	var comments []Comment
	path := fmt.Sprintf("/posts/%d/comments%s", postID, opts.query())
	if err := c.client.sendAndDecode(ctx, http.MethodGet, path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment publishes a comment on a post.
func (c *PostsClient) AddComment(ctx context.Context, postID int64, content string) (Comment, error) {
	if err := c.ensureInitialized(); err != nil {
		return Comment{}, err
	}
	if postID <= 0 {
		return Comment{}, fmt.Errorf("pulse: post_id is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return Comment{}, fmt.Errorf("pulse: content is required")
	}
	payload := struct {
		Content string `json:"content"`
	}{Content: content}
	var comment Comment
	path := fmt.Sprintf("/posts/%d/comments", postID)
	if err := c.client.sendAndDecode(ctx, http.MethodPost, path, payload, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// ToggleLike flips the authenticated user's like on a post and returns the
// resulting state. There is no separate unlike call.
func (c *PostsClient) ToggleLike(ctx context.Context, postID int64) (LikeResult, error) {
	if err := c.ensureInitialized(); err != nil {
		return LikeResult{}, err
	}
	if postID <= 0 {
		return LikeResult{}, fmt.Errorf("pulse: post_id is required")
	}
	var result LikeResult
	path := fmt.Sprintf("/posts/%d/like", postID)
	if err := c.client.sendAndDecode(ctx, http.MethodPost, path, nil, &result); err != nil {
		return LikeResult{}, err
	}
	return result, nil
}
