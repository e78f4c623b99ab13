package client

import (
	"context"
	"fmt"
	"net/http"

	"eventconnect/internal/domain"
)

// ListEventRegistrations fetches the registrations for an event.
func (c *Client) ListEventRegistrations(ctx context.Context, eventID int) ([]*domain.Registration, error) {
	var res []wireRegistration
	err := c.do(ctx, "list event registrations", http.MethodGet, fmt.Sprintf("/inscriptions/evenement/%d", eventID), nil, true, &res)
	if err != nil {
		return nil, err
	}
	return registrationsToDomain(res), nil
}

// ListUserRegistrations fetches the registrations of a user.
func (c *Client) ListUserRegistrations(ctx context.Context, userID int) ([]*domain.Registration, error) {
	var res []wireRegistration
	err := c.do(ctx, "list user registrations", http.MethodGet, fmt.Sprintf("/inscriptions/utilisateur/%d", userID), nil, true, &res)
	if err != nil {
		return nil, err
	}
	return registrationsToDomain(res), nil
}

// CreateRegistration registers a user for an event.
func (c *Client) CreateRegistration(ctx context.Context, userID, eventID int) (*domain.Registration, error) {
	const op = "create registration"
	body := struct {
		UtilisateurID int `json:"utilisateur_id"`
		EvenementID   int `json:"evenement_id"`
	}{UtilisateurID: userID, EvenementID: eventID}

	var res wireRegistration
	if err := c.do(ctx, op, http.MethodPost, "/inscriptions", body, true, &res); err != nil {
		return nil, err
	}
	if res.ID == 0 {
		return nil, malformed(op, "missing registration id")
	}
	return res.toDomain(), nil
}

// DeleteRegistration cancels a registration by id.
func (c *Client) DeleteRegistration(ctx context.Context, id int) error {
	return c.do(ctx, "delete registration", http.MethodDelete, fmt.Sprintf("/inscriptions/%d", id), nil, true, nil)
}

func registrationsToDomain(res []wireRegistration) []*domain.Registration {
	registrations := make([]*domain.Registration, len(res))
	for i, r := range res {
		registrations[i] = r.toDomain()
	}
	return registrations
}
