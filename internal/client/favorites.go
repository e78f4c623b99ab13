package client

import (
	"context"
	"fmt"
	"net/http"

	"eventconnect/internal/domain"
)

// ListFavorites fetches the favorites of a user.
func (c *Client) ListFavorites(ctx context.Context, userID int) ([]*domain.Favorite, error) {
	var res []wireFavorite
	err := c.do(ctx, "list favorites", http.MethodGet, fmt.Sprintf("/favoris/utilisateur/%d", userID), nil, true, &res)
	if err != nil {
		return nil, err
	}
	favorites := make([]*domain.Favorite, len(res))
	for i, f := range res {
		favorites[i] = f.toDomain()
	}
	return favorites, nil
}

// AddFavorite marks an event as a favorite of the user.
func (c *Client) AddFavorite(ctx context.Context, userID, eventID int) (*domain.Favorite, error) {
	body := struct {
		UtilisateurID int `json:"utilisateur_id"`
		EvenementID   int `json:"evenement_id"`
	}{UtilisateurID: userID, EvenementID: eventID}

	var res wireFavorite
	if err := c.do(ctx, "add favorite", http.MethodPost, "/favoris", body, true, &res); err != nil {
		return nil, err
	}
	return res.toDomain(), nil
}

// RemoveFavorite deletes the user-event favorite association.
func (c *Client) RemoveFavorite(ctx context.Context, userID, eventID int) error {
	return c.do(ctx, "remove favorite", http.MethodDelete, fmt.Sprintf("/favoris/%d/%d", userID, eventID), nil, true, nil)
}
