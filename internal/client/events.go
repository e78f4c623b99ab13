package client

import (
	"context"
	"fmt"
	"net/http"

	"eventconnect/internal/domain"
)

// ListEvents fetches all events. Public operation.
func (c *Client) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	var res []wireEvent
	if err := c.do(ctx, "list events", http.MethodGet, "/evenements", nil, false, &res); err != nil {
		return nil, err
	}
	events := make([]*domain.Event, len(res))
	for i, e := range res {
		events[i] = e.toDomain()
	}
	return events, nil
}

// GetEvent fetches a single event by id. Public operation.
func (c *Client) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	const op = "get event"
	var res wireEvent
	if err := c.do(ctx, op, http.MethodGet, fmt.Sprintf("/evenements/%d", id), nil, false, &res); err != nil {
		return nil, err
	}
	if res.ID == 0 {
		return nil, malformed(op, "missing event id")
	}
	return res.toDomain(), nil
}

// CreateEvent creates an event and returns it with server-assigned fields.
func (c *Client) CreateEvent(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	const op = "create event"
	var res wireEvent
	if err := c.do(ctx, op, http.MethodPost, "/evenements", eventInputToWire(input), true, &res); err != nil {
		return nil, err
	}
	if res.ID == 0 {
		return nil, malformed(op, "missing event id")
	}
	return res.toDomain(), nil
}

// UpdateEvent replaces the mutable fields of an event.
func (c *Client) UpdateEvent(ctx context.Context, id int, input domain.EventInput) (*domain.Event, error) {
	var res wireEvent
	err := c.do(ctx, "update event", http.MethodPut, fmt.Sprintf("/evenements/%d", id), eventInputToWire(input), true, &res)
	if err != nil {
		return nil, err
	}
	return res.toDomain(), nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	return c.do(ctx, "delete event", http.MethodDelete, fmt.Sprintf("/evenements/%d", id), nil, true, nil)
}
