package domain

import "context"

// AuthAPI is the slice of the backend API the login/register flow needs.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (token string, user *User, err error)
	Register(ctx context.Context, signup Signup) (token string, user *User, err error)
}

// FavoritesAPI is the slice of the backend API favorites resolution needs.
type FavoritesAPI interface {
	ListFavorites(ctx context.Context, userID int) ([]*Favorite, error)
	GetEvent(ctx context.Context, id int) (*Event, error)
}

// SessionWriter is the session lifecycle as the auth flow drives it.
type SessionWriter interface {
	Login(ctx context.Context, token string, user *User) error
	Logout(ctx context.Context) error
}
