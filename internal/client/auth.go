package client

import (
	"context"
	"net/http"

	"eventconnect/internal/domain"
)

// Login authenticates against the backend and returns the issued token and
// the normalized user. It is a public operation: no bearer token is sent.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	const op = "login"
	body := struct {
		Email      string `json:"email"`
		MotDePasse string `json:"mot_de_passe"`
	}{Email: creds.Email, MotDePasse: creds.Password}

	var res wireAuthResponse
	if err := c.do(ctx, op, http.MethodPost, "/utilisateurs/login", body, false, &res); err != nil {
		return "", nil, err
	}
	if res.Token == "" || res.Utilisateur.ID == 0 {
		return "", nil, malformed(op, "missing token or user")
	}
	return res.Token, res.Utilisateur.toDomain(), nil
}

// Register creates an account and returns the issued token and user, the
// backend logging the new account in immediately.
func (c *Client) Register(ctx context.Context, signup domain.Signup) (string, *domain.User, error) {
	const op = "register"
	body := struct {
		Nom        string `json:"nom"`
		Email      string `json:"email"`
		MotDePasse string `json:"mot_de_passe"`
	}{Nom: signup.Name, Email: signup.Email, MotDePasse: signup.Password}

	var res wireAuthResponse
	if err := c.do(ctx, op, http.MethodPost, "/utilisateurs/register", body, false, &res); err != nil {
		return "", nil, err
	}
	if res.Token == "" || res.Utilisateur.ID == 0 {
		return "", nil, malformed(op, "missing token or user")
	}
	return res.Token, res.Utilisateur.toDomain(), nil
}
