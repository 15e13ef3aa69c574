// Package credstore persists the bearer credential between runs. The store
// holds at most one value under a fixed key; an absent credential reads back
// as an empty string, never as an error.
package credstore

import "context"

// the single key the credential lives under.
const credentialKey = "access_token"

// Store is the durable home of the bearer credential.
type Store interface {
	// Load returns the persisted credential, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	// Save persists the credential, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Clear removes the persisted credential. Clearing an empty store is
	// not an error.
	Clear(ctx context.Context) error
}
