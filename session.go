package pulse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pulsesocial/pulse-go/credstore"
)

// SessionState is the observable authentication state.
type SessionState string

const (
	// StateLoading means a hydration request is in flight.
	StateLoading SessionState = "loading"
	// StateAuthenticated means credential and profile are both present.
	StateAuthenticated SessionState = "authenticated"
	// StateAnonymous means credential and profile are both absent.
	StateAnonymous SessionState = "anonymous"
)

// Listener observes committed session state transitions.
type Listener func(state SessionState)

// Session is the single authority for "who is logged in". It owns the
// persisted credential, the hydrated profile, and the login/register/logout
// lifecycle, and it notifies subscribers synchronously after every committed
// transition.
//
// Every asynchronous mutation is tagged with a generation number at issue
// time; a completion whose generation is no longer current is discarded, so
// a hydration that loses the race against Logout cannot resurrect a stale
// profile.
type Session struct {
	store  credstore.Store
	client *Client

	mu           sync.Mutex
	state        SessionState
	token        string
	user         *User
	gen          uint64
	listeners    map[int]Listener
	nextListener int
}

// NewSession builds a Session and the Client it hydrates through. The
// session itself is used as the client's TokenSource unless cfg.Tokens is
// already set, so every call through Client() carries the current credential.
func NewSession(store credstore.Store, cfg Config) (*Session, error) {
	if store == nil {
		return nil, errors.New("pulse: credential store required")
	}
	s := &Session{
		store:     store,
		state:     StateAnonymous,
		listeners: make(map[int]Listener),
	}
	if cfg.Tokens == nil {
		cfg.Tokens = s
	}
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	s.client = client
	return s, nil
}

// Client returns the API client bound to this session's credential.
func (s *Session) Client() *Client { return s.client }

// Token implements TokenSource with the session's current credential.
func (s *Session) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns a copy of the hydrated profile, or nil when not authenticated.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Credential returns the current bearer token, or "" when absent.
func (s *Session) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Subscribe registers a listener invoked synchronously after each committed
// state transition. The returned func removes the listener.
func (s *Session) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Initialize reads any persisted credential and, when one exists, hydrates
// the profile. Without a credential the session becomes anonymous without a
// single network call. A failed hydration is not an error to the caller: the
// credential is purged and the session settles at anonymous. Only a failure
// to read the store itself is returned.
func (s *Session) Initialize(ctx context.Context) error {
	token, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("pulse: load credential: %w", err)
	}
	if token == "" {
		s.commitAnonymous()
		return nil
	}
	gen := s.begin(token)
	if err := s.hydrate(ctx, gen); err != nil {
		s.client.telemetry.log(ctx, LogLevelError, "session_hydration_failed", map[string]any{
			"error": err.Error(),
		})
	}
	return nil
}

// Login exchanges the credentials for a bearer token, persists it, and
// re-hydrates. A failed token request leaves the prior session state
// untouched; a failed hydration purges the new credential and is returned.
func (s *Session) Login(ctx context.Context, username, password string) error {
	tok, err := s.client.Auth.Token(ctx, username, password)
	if err != nil {
		return err
	}
	if tok.AccessToken == "" {
		return errors.New("pulse: token endpoint returned no access_token")
	}
	if err := s.store.Save(ctx, tok.AccessToken); err != nil {
		return fmt.Errorf("pulse: persist credential: %w", err)
	}
	gen := s.begin(tok.AccessToken)
	return s.hydrate(ctx, gen)
}

// Register creates a new account with the default role. It does not
// authenticate; call Login afterwards.
func (s *Session) Register(ctx context.Context, req RegisterRequest) error {
	return s.client.Auth.Register(ctx, req)
}

// Logout clears the persisted credential and resets the session to
// anonymous. No network call is made; the server never learns about a
// client-initiated logout.
func (s *Session) Logout() {
	s.commitAnonymous()
	if err := s.store.Clear(context.Background()); err != nil {
		s.client.telemetry.log(context.Background(), LogLevelError, "credential_clear_failed", map[string]any{
			"error": err.Error(),
		})
	}
}

// CredentialExpiry reads the expiry claim from the bearer token without
// verifying its signature. Display purposes only; the session never skips
// hydration based on it.
func (s *Session) CredentialExpiry() (time.Time, bool) {
	token := s.Credential()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// begin moves the session to loading with a fresh generation and returns it.
func (s *Session) begin(token string) uint64 {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.token = token
	s.user = nil
	s.state = StateLoading
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners, StateLoading)
	return gen
}

// hydrate fetches the profile and commits the outcome, unless a newer
// operation has superseded this generation in the meantime.
func (s *Session) hydrate(ctx context.Context, gen uint64) error {
	user, err := s.client.Users.Me(ctx)
	if err != nil {
		if s.tryCommit(gen, StateAnonymous, nil) {
			if clearErr := s.store.Clear(ctx); clearErr != nil {
				s.client.telemetry.log(ctx, LogLevelError, "credential_clear_failed", map[string]any{
					"error": clearErr.Error(),
				})
			}
		}
		return fmt.Errorf("pulse: hydrate session: %w", err)
	}
	s.tryCommit(gen, StateAuthenticated, &user)
	return nil
}

// tryCommit applies a state transition if gen is still current. Listeners
// run synchronously, outside the lock.
func (s *Session) tryCommit(gen uint64, state SessionState, user *User) bool {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return false
	}
	s.state = state
	s.user = user
	if state != StateAuthenticated {
		s.token = ""
	}
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners, state)
	return true
}

// commitAnonymous unconditionally resets to anonymous under a new
// generation, invalidating any hydration still in flight.
func (s *Session) commitAnonymous() {
	s.mu.Lock()
	s.gen++
	s.state = StateAnonymous
	s.token = ""
	s.user = nil
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners, StateAnonymous)
}

func (s *Session) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []Listener, state SessionState) {
	for _, fn := range listeners {
		fn(state)
	}
}
