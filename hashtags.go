package pulse

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pulsesocial/pulse-go/routes"
)

// HashtagsClient provides methods for hashtag discovery.
type HashtagsClient struct {
	client *Client
}

func (c *HashtagsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("pulse: hashtags client not initialized")
	}
	return nil
}

// Trending returns the most used hashtags. limit <= 0 means the backend
// default of 10.
func (c *HashtagsClient) Trending(ctx context.Context, limit int) (TrendingTags, error) {
	if err := c.ensureInitialized(); err != nil {
		return TrendingTags{}, err
	}
	path := routes.HashtagsTrending
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var tags TrendingTags
	if err := c.client.sendAndDecode(ctx, http.MethodGet, path, nil, &tags); err != nil {
		return TrendingTags{}, err
	}
	return tags, nil
}

// Posts returns published posts carrying the given hashtag, newest first.
// A leading "#" is stripped before the tag goes on the wire.
func (c *HashtagsClient) Posts(ctx context.Context, tag string, opts PageOptions) (Feed, error) {
	if err := c.ensureInitialized(); err != nil {
		return Feed{}, err
	}
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
	if tag == "" {
		return Feed{}, fmt.Errorf("pulse: tag is required")
	}
	var feed Feed
	path := fmt.Sprintf("/hashtags/%s/posts%s", url.PathEscape(tag), opts.query())
	if err := c.client.sendAndDecode(ctx, http.MethodGet, path, nil, &feed); err != nil {
		return Feed{}, err
	}
	return feed, nil
}
