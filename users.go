package pulse

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pulsesocial/pulse-go/routes"
)

// PageOptions selects a window of a listing. Zero values mean the backend
// defaults (limit 20 or 30 depending on the endpoint, offset 0).
type PageOptions struct {
	Limit  int
	Offset int
}

func (p PageOptions) query() string {
	params := url.Values{}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		params.Set("offset", strconv.Itoa(p.Offset))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// UsersClient provides methods for reading user profiles and their posts.
type UsersClient struct {
	client *Client
}

func (c *UsersClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("pulse: users client not initialized")
	}
	return nil
}

// Me returns the profile of the authenticated user. This is the hydration
// call the Session store issues after login and at initialize.
func (c *UsersClient) Me(ctx context.Context) (User, error) {
	if err := c.ensureInitialized(); err != nil {
		return User{}, err
	}
	var u User
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.UsersMe, nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// MyPosts returns the authenticated user's published posts, newest first.
func (c *UsersClient) MyPosts(ctx context.Context, opts PageOptions) (Feed, error) {
	if err := c.ensureInitialized(); err != nil {
		return Feed{}, err
	}
	var feed Feed
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.UsersMePosts+opts.query(), nil, &feed); err != nil {
		return Feed{}, err
	}
	return feed, nil
}

// Get returns the public profile of a user by id.
func (c *UsersClient) Get(ctx context.Context, userID int64) (User, error) {
	if err := c.ensureInitialized(); err != nil {
		return User{}, err
	}
	if userID <= 0 {
		return User{}, fmt.Errorf("pulse: user_id is required")
	}
	var u User
	path := fmt.Sprintf("/users/%d", userID)
	if err := c.client.sendAndDecode(ctx, http.MethodGet, path, nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Posts returns a user's published posts, newest first.
func (c *UsersClient) Posts(ctx context.Context, userID int64, opts PageOptions) (Feed, error) {
	if err := c.ensureInitialized(); err != nil {
		return Feed{}, err
	}
	if userID <= 0 {
		return Feed{}, fmt.Errorf("pulse: user_id is required")
	}
	var feed Feed
	path := fmt.Sprintf("/users/%d/posts%s", userID, opts.query())
	if err := c.client.sendAndDecode(ctx, http.MethodGet, path, nil, &feed); err != nil {
		return Feed{}, err
	}
	return feed, nil
}
