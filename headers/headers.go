// Package headers defines HTTP header constants used across the Pulse clients.
// This is the single source of truth for header names used in API requests.
package headers

const (
	// RequestID is the header for request correlation. The gateway fills it
	// with a fresh UUID when the caller did not supply one.
	RequestID = "X-Request-Id"

	// Client identifies the calling application (e.g. "pulse-cli").
	Client = "X-Pulse-Client"
)
