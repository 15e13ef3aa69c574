package pulse

import "time"

// User is the hydrated profile of an authenticated account.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// PostOwner identifies the author of a post or comment.
type PostOwner struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Post is a published post as the feed and detail endpoints return it.
// Count and flag fields are only populated by endpoints that compute them.
type Post struct {
	ID           int64     `json:"id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	Owner        PostOwner `json:"owner"`
	LikeCount    int       `json:"like_count"`
	LikedByMe    bool      `json:"liked_by_me"`
	CommentCount int       `json:"comment_count"`
	ImageURLs    []string  `json:"image_urls,omitempty"`
	Hashtags     []string  `json:"hashtags,omitempty"`
}

// Feed is the common envelope for post listings.
type Feed struct {
	Items []Post `json:"items"`
}

// Comment is a published comment on a post.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Owner     PostOwner `json:"owner"`
}

// LikeResult reports the post's like state after a toggle.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// TrendingTag is one entry of the trending-hashtags listing.
type TrendingTag struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TrendingTags is the envelope for the trending-hashtags listing.
type TrendingTags struct {
	Items []TrendingTag `json:"items"`
}

// TokenResponse mirrors the token endpoint's body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PostSource records how a post's content came to be.
type PostSource string

const (
	PostSourceUser     PostSource = "user"
	PostSourceAIAssist PostSource = "ai_assist"
)

// PostCreateRequest contains the fields to publish a post.
type PostCreateRequest struct {
	Content             string     `json:"content"`
	Source              PostSource `json:"source"`
	GeneratedFromPrompt string     `json:"generated_from_prompt,omitempty"`
	ModelName           string     `json:"model_name,omitempty"`
}

// PostCreateResponse carries the id of the newly created post.
type PostCreateResponse struct {
	ID int64 `json:"id"`
}

// RegisterRequest contains the fields to create an account. Role is assigned
// by the session store; the backend defaults it to "user" as well.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

// GeneratePostRequest asks the backend to draft a post.
type GeneratePostRequest struct {
	Topic     string `json:"topic"`
	Tone      string `json:"tone,omitempty"`
	Audience  string `json:"audience,omitempty"`
	WantImage bool   `json:"want_image"`
	MaxLength int    `json:"max_length,omitempty"`
}

// GeneratePostResponse is the drafted post plus optional extras.
type GeneratePostResponse struct {
	Content           string   `json:"content"`
	SuggestedHashtags []string `json:"suggested_hashtags,omitempty"`
	ImagePrompt       string   `json:"image_prompt,omitempty"`
}

// RewriteMode selects the rewrite strategy.
type RewriteMode string

const (
	RewriteModeGrammar RewriteMode = "grammar"
	RewriteModeImprove RewriteMode = "improve"
	RewriteModeShorten RewriteMode = "shorten"
	RewriteModeExpand  RewriteMode = "expand"
)

// RewritePostRequest asks the backend to rewrite existing text.
type RewritePostRequest struct {
	Text       string      `json:"text"`
	Mode       RewriteMode `json:"mode"`
	TargetTone string      `json:"target_tone,omitempty"`
	MaxLength  int         `json:"max_length,omitempty"`
}

// RewritePostResponse carries the rewritten text.
type RewritePostResponse struct {
	RewrittenText string `json:"rewritten_text"`
}
