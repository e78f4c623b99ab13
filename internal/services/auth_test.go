package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventconnect/internal/domain"
)

// fakeAuthAPI implements domain.AuthAPI for tests.
type fakeAuthAPI struct {
	token string
	user  *domain.User
	err   error
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, signup domain.Signup) (string, *domain.User, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

// fakeSessionWriter implements domain.SessionWriter for tests.
type fakeSessionWriter struct {
	loginErr error
	token    string
	user     *domain.User
	logouts  int
}

func (f *fakeSessionWriter) Login(ctx context.Context, token string, user *domain.User) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.token = token
	f.user = user
	return nil
}

func (f *fakeSessionWriter) Logout(ctx context.Context) error {
	f.logouts++
	f.token = ""
	f.user = nil
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	user := domain.NewUser(7, "A", "a@b.com", "")

	tests := []struct {
		name     string
		api      *fakeAuthAPI
		sessions *fakeSessionWriter
		wantErr  bool
	}{
		{
			name:     "success populates session",
			api:      &fakeAuthAPI{token: "tok1", user: user},
			sessions: &fakeSessionWriter{},
		},
		{
			name:     "backend rejection leaves session untouched",
			api:      &fakeAuthAPI{err: &domain.APIError{Op: "login", Status: 401, Message: "invalid credentials"}},
			sessions: &fakeSessionWriter{},
			wantErr:  true,
		},
		{
			name:     "session persistence failure surfaces",
			api:      &fakeAuthAPI{token: "tok1", user: user},
			sessions: &fakeSessionWriter{loginErr: errors.New("quota exceeded")},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := NewAuth(tt.api, tt.sessions, testLogger())
			got, err := auth.Login(ctx, domain.Credentials{Email: "a@b.com", Password: "x"})
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, tt.sessions.token)
				assert.Nil(t, tt.sessions.user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, got)
			assert.Equal(t, "tok1", tt.sessions.token)
			assert.Equal(t, user, tt.sessions.user)
		})
	}
}

func TestAuth_Register(t *testing.T) {
	ctx := context.Background()
	user := domain.NewUser(9, "B", "b@c.com", "")
	sessions := &fakeSessionWriter{}
	auth := NewAuth(&fakeAuthAPI{token: "tok9", user: user}, sessions, testLogger())

	got, err := auth.Register(ctx, domain.Signup{Name: "B", Email: "b@c.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, "tok9", sessions.token)
}

func TestAuth_Logout(t *testing.T) {
	ctx := context.Background()
	sessions := &fakeSessionWriter{token: "tok1"}
	auth := NewAuth(&fakeAuthAPI{}, sessions, testLogger())

	require.NoError(t, auth.Logout(ctx))
	assert.Equal(t, 1, sessions.logouts)
	assert.Empty(t, sessions.token)
}
