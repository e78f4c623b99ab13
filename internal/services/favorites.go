package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventconnect/internal/domain"
)

// Favorites resolves a user's favorite ids into full events.
type Favorites struct {
	api    domain.FavoritesAPI
	logger *slog.Logger
}

// NewFavorites creates a Favorites resolver.
func NewFavorites(api domain.FavoritesAPI, logger *slog.Logger) *Favorites {
	if logger == nil {
		logger = slog.Default()
	}
	return &Favorites{api: api, logger: logger}
}

// Resolve lists the user's favorites and fetches each event. A lookup that
// fails is logged and skipped, so partial failures degrade to a shorter
// list instead of failing the whole operation. Order of the surviving
// events follows the favorites list.
func (f *Favorites) Resolve(ctx context.Context, userID int) ([]*domain.Event, error) {
	favorites, err := f.api.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	events := make([]*domain.Event, 0, len(favorites))
	for _, fav := range favorites {
		event, err := f.api.GetEvent(ctx, fav.EventID)
		if err != nil {
			f.logger.Warn("skipping unresolvable favorite", "event_id", fav.EventID, "error", err)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
