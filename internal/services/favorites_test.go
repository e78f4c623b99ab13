package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventconnect/internal/domain"
)

// fakeFavoritesAPI implements domain.FavoritesAPI for tests.
type fakeFavoritesAPI struct {
	favorites []*domain.Favorite
	listErr   error
	events    map[int]*domain.Event
	failIDs   map[int]bool
}

func (f *fakeFavoritesAPI) ListFavorites(ctx context.Context, userID int) ([]*domain.Favorite, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.favorites, nil
}

func (f *fakeFavoritesAPI) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	if f.failIDs[id] {
		return nil, &domain.APIError{Op: "get event", Status: 404, Message: "not found"}
	}
	if ev, ok := f.events[id]; ok {
		return ev, nil
	}
	return nil, errors.New("unexpected event id")
}

func favoriteOf(eventID int) *domain.Favorite {
	return &domain.Favorite{UserID: 7, EventID: eventID, AddedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestFavorites_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("partial lookup failure degrades to a shorter list", func(t *testing.T) {
		api := &fakeFavoritesAPI{
			favorites: []*domain.Favorite{favoriteOf(1), favoriteOf(2), favoriteOf(3)},
			events: map[int]*domain.Event{
				1: {ID: 1, Name: "First"},
				3: {ID: 3, Name: "Third"},
			},
			failIDs: map[int]bool{2: true},
		}

		events, err := NewFavorites(api, testLogger()).Resolve(ctx, 7)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, 1, events[0].ID)
		assert.Equal(t, 3, events[1].ID)
	})

	t.Run("listing failure fails the operation", func(t *testing.T) {
		api := &fakeFavoritesAPI{listErr: errors.New("boom")}
		_, err := NewFavorites(api, testLogger()).Resolve(ctx, 7)
		require.Error(t, err)
	})

	t.Run("no favorites resolves to an empty list", func(t *testing.T) {
		api := &fakeFavoritesAPI{}
		events, err := NewFavorites(api, testLogger()).Resolve(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
