// Package session holds the client's single source of truth for "who is
// logged in", backed by persistent local storage so identity survives
// restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventconnect/internal/domain"
)

// Storage keys. legacyUserIDKey was written by old builds; it is never
// written anymore but still removed on logout and corruption cleanup.
const (
	tokenKey        = "token"
	userKey         = "user"
	legacyUserIDKey = "userId"
)

// Store keeps the current session in memory and mirrors it to a
// domain.KeyStore. It implements domain.TokenProvider for the API layer.
type Store struct {
	storage domain.KeyStore
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.RWMutex
	status  domain.SessionStatus
	current domain.Session

	subMu   sync.Mutex
	subs    map[int]func(domain.Session)
	nextSub int
}

// NewStore creates a Store over the given key/value storage. The store
// reports StatusLoading until Initialize has run.
func NewStore(storage domain.KeyStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		storage: storage,
		logger:  logger,
		now:     time.Now,
		status:  domain.StatusLoading,
		subs:    make(map[int]func(domain.Session)),
	}
}

// Initialize rehydrates the session from persistent storage. Corrupt or
// partial state self-heals to anonymous: both keys are cleared and no error
// escapes, so the application stays usable in a logged-out state.
func (s *Store) Initialize(ctx context.Context) {
	token, user, err := s.readPersisted(ctx)
	if err != nil {
		s.logger.Warn("clearing unusable persisted session", "error", err)
		s.clearPersisted(ctx)
		token, user = "", nil
	}

	s.mu.Lock()
	s.current = domain.Session{Token: token, User: user}
	if user != nil {
		s.status = domain.StatusAuthenticated
	} else {
		s.status = domain.StatusAnonymous
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

func (s *Store) readPersisted(ctx context.Context) (string, *domain.User, error) {
	token, err := s.storage.Get(ctx, tokenKey)
	if errors.Is(err, domain.ErrKeyNotFound) {
		if _, userErr := s.storage.Get(ctx, userKey); errors.Is(userErr, domain.ErrKeyNotFound) {
			return "", nil, nil
		}
		// A user without a token is a half-written session.
		return "", nil, fmt.Errorf("user persisted without a token")
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to read token: %w", err)
	}
	raw, err := s.storage.Get(ctx, userKey)
	if err != nil {
		// A token without a user is a half-written session.
		return "", nil, fmt.Errorf("failed to read user: %w", err)
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", nil, fmt.Errorf("failed to parse persisted user: %w", err)
	}
	if user.ID == 0 {
		return "", nil, fmt.Errorf("persisted user is missing an id")
	}
	if s.tokenExpired(token) {
		return "", nil, fmt.Errorf("persisted token is expired")
	}
	return token, &user, nil
}

// tokenExpired inspects a JWT's exp claim without verifying the signature;
// the backend remains the authority, this only avoids rehydrating an
// identity the server is guaranteed to reject. Opaque tokens pass through.
func (s *Store) tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(s.now())
}

func (s *Store) clearPersisted(ctx context.Context) {
	if err := s.storage.DeleteMany(ctx, tokenKey, userKey, legacyUserIDKey); err != nil {
		s.logger.Warn("failed to clear persisted session", "error", err)
	}
}

// Login persists the token/user pair and then updates in-memory state.
// Both keys are written in one atomic storage call; on failure nothing
// changes and the caller gets the error.
func (s *Store) Login(ctx context.Context, token string, user *domain.User) error {
	if token == "" || user == nil {
		return fmt.Errorf("session requires both a token and a user")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	if err := s.storage.SetMany(ctx, map[string]string{
		tokenKey: token,
		userKey:  string(raw),
	}); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	u := *user
	s.mu.Lock()
	s.current = domain.Session{Token: token, User: &u}
	s.status = domain.StatusAuthenticated
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// Logout clears persistent and in-memory state. It is idempotent, and
// in-memory state is cleared even when the storage delete fails.
func (s *Store) Logout(ctx context.Context) error {
	err := s.storage.DeleteMany(ctx, tokenKey, userKey, legacyUserIDKey)
	if err != nil {
		s.logger.Warn("failed to remove persisted session", "error", err)
	}

	s.mu.Lock()
	s.current = domain.Session{}
	s.status = domain.StatusAnonymous
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return err
}

// Current returns a snapshot of the session. The user is copied so callers
// cannot mutate store state.
func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Status reports loading, anonymous or authenticated.
func (s *Store) Status() domain.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// IsAuthenticated is derived from the presence of a user; it is never
// persisted on its own.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsAuthenticated()
}

// Token implements domain.TokenProvider.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.current.IsAuthenticated() {
		return "", false
	}
	return s.current.Token, true
}

// Subscribe registers fn to be called with a session snapshot after every
// state change. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(domain.Session)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) snapshotLocked() domain.Session {
	snap := domain.Session{Token: s.current.Token}
	if s.current.User != nil {
		u := *s.current.User
		snap.User = &u
	}
	return snap
}

// notify runs subscribers outside the state lock so a subscriber may call
// back into the store.
func (s *Store) notify(snapshot domain.Session) {
	s.subMu.Lock()
	fns := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}
