package client

import (
	"context"
	"fmt"
	"net/http"

	"eventconnect/internal/domain"
)

// GetUser fetches a user profile. Requires authentication.
func (c *Client) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var res wireUser
	err := c.do(ctx, "get user", http.MethodGet, fmt.Sprintf("/utilisateurs/%d", id), nil, true, &res)
	if err != nil {
		return nil, err
	}
	return res.toDomain(), nil
}

// UpdateUser applies a partial profile update and returns the updated user.
func (c *Client) UpdateUser(ctx context.Context, id int, update domain.UserUpdate) (*domain.User, error) {
	body := struct {
		Nom   *string `json:"nom,omitempty"`
		Email *string `json:"email,omitempty"`
		Role  *string `json:"role,omitempty"`
	}{Nom: update.Name, Email: update.Email, Role: update.Role}

	var res wireUser
	err := c.do(ctx, "update user", http.MethodPut, fmt.Sprintf("/utilisateurs/%d", id), body, true, &res)
	if err != nil {
		return nil, err
	}
	return res.toDomain(), nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, "delete user", http.MethodDelete, fmt.Sprintf("/utilisateurs/%d", id), nil, true, nil)
}

// ChangePassword replaces the account password, verifying the old one
// server-side.
func (c *Client) ChangePassword(ctx context.Context, id int, oldPassword, newPassword string) error {
	body := struct {
		Ancien  string `json:"ancien_mot_de_passe"`
		Nouveau string `json:"nouveau_mot_de_passe"`
	}{Ancien: oldPassword, Nouveau: newPassword}
	return c.do(ctx, "change password", http.MethodPut, fmt.Sprintf("/utilisateurs/%d/mot_de_passe", id), body, true, nil)
}
