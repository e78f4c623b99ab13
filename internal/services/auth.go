// Package services composes the API layer and the session store into the
// flows the UI consumes.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventconnect/internal/domain"
)

// Auth drives the login/register/logout flows: authenticate against the
// backend, then populate or clear the session store.
type Auth struct {
	api      domain.AuthAPI
	sessions domain.SessionWriter
	logger   *slog.Logger
}

// NewAuth creates an Auth flow over the given API and session store.
func NewAuth(api domain.AuthAPI, sessions domain.SessionWriter, logger *slog.Logger) *Auth {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auth{api: api, sessions: sessions, logger: logger}
}

// Login authenticates and persists the resulting session. A storage failure
// after a successful backend login surfaces to the caller; the session store
// guarantees no half-written state is left behind.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	token, user, err := a.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := a.sessions.Login(ctx, token, user); err != nil {
		return nil, fmt.Errorf("login succeeded but session could not be saved: %w", err)
	}
	a.logger.Info("user logged in", "user_id", user.ID)
	return user, nil
}

// Register creates an account and persists the session the backend issues
// with it.
func (a *Auth) Register(ctx context.Context, signup domain.Signup) (*domain.User, error) {
	token, user, err := a.api.Register(ctx, signup)
	if err != nil {
		return nil, err
	}
	if err := a.sessions.Login(ctx, token, user); err != nil {
		return nil, fmt.Errorf("registration succeeded but session could not be saved: %w", err)
	}
	a.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Logout clears the session.
func (a *Auth) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}
