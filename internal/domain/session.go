package domain

import "context"

// SessionStatus distinguishes "rehydration still pending" from "nobody is
// logged in", so callers do not redirect before persisted state is read.
type SessionStatus int

const (
	StatusLoading SessionStatus = iota
	StatusAnonymous
	StatusAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Session is the client-held pair of bearer token and user identity.
// Token and User are always set or cleared together; a session missing
// either is not authenticated.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// IsAuthenticated reports whether the session carries an identity.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// TokenProvider exposes the current bearer token to the API layer.
// ok is false when nobody is logged in.
type TokenProvider interface {
	Token() (token string, ok bool)
}

// KeyStore is the persistent local storage backing the session store,
// the moral equivalent of browser localStorage. SetMany and DeleteMany
// are atomic: either every key is written/removed or none is.
type KeyStore interface {
	Get(ctx context.Context, key string) (string, error)
	SetMany(ctx context.Context, values map[string]string) error
	DeleteMany(ctx context.Context, keys ...string) error
	Close() error
}
