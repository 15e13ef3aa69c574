// Package routes provides shared API route constants used by the Pulse
// clients to prevent path mismatches.
package routes

const (
	// AuthToken exchanges form-encoded username/password for a bearer token.
	AuthToken = "/auth/token" // #nosec G101 -- route path, not a credential

	// AuthRegister creates a new user account. The trailing slash matters to
	// the backend router.
	AuthRegister = "/auth/"

	// UsersMe returns the current authenticated user's profile.
	UsersMe = "/users/me"

	// UsersMePosts returns the current user's published posts.
	UsersMePosts = "/users/me/posts"

	// Posts creates a post. The trailing slash matters to the backend router.
	Posts = "/posts/"

	// PostsFeed returns the public feed, newest first.
	PostsFeed = "/posts/feed"

	// HashtagsTrending returns the most used hashtags.
	HashtagsTrending = "/hashtags/trending"

	// ImageUpload accepts a multipart form with a description field and a
	// file part.
	ImageUpload = "/image"

	// AIGeneratePost drafts a post from a topic, tone, and audience.
	AIGeneratePost = "/ai/generate-post"

	// AIRewritePost rewrites existing text (grammar, improve, shorten, expand).
	AIRewritePost = "/ai/rewrite-post"
)
