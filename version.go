package pulse

// Version is the published SDK version.
// 0.4.0: Breaking - Session is an explicit object with Subscribe; the old
// package-level CurrentUser/SetToken globals are gone.
// 0.3.1: Discard hydration completions that lose the race against Logout.
// 0.3.0: Add AI drafting endpoints (generate-post, rewrite-post).
// 0.2.0: Multipart image upload, hashtag and comment clients.
const Version = "0.4.0"
