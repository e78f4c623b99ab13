package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventconnect/internal/domain"
)

func TestAction_Lifecycle(t *testing.T) {
	ctx := context.Background()
	var action Action
	assert.Equal(t, ActionIdle, action.State())

	err := action.Run(ctx, func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, ActionSucceeded, action.State())
	assert.NoError(t, action.Err())

	boom := errors.New("boom")
	err = action.Run(ctx, func(ctx context.Context) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, ActionFailed, action.State())
	assert.ErrorIs(t, action.Err(), boom)

	// A failed action may be retried, and a success clears the error.
	err = action.Run(ctx, func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, ActionSucceeded, action.State())
	assert.NoError(t, action.Err())
}

func TestAction_RejectsConcurrentRun(t *testing.T) {
	ctx := context.Background()
	var action Action

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- action.Run(ctx, func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	assert.Equal(t, ActionPending, action.State())
	err := action.Run(ctx, func(ctx context.Context) error { return nil })
	require.ErrorIs(t, err, domain.ErrActionPending)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, ActionSucceeded, action.State())
}

func TestActionState_String(t *testing.T) {
	assert.Equal(t, "idle", ActionIdle.String())
	assert.Equal(t, "pending", ActionPending.String())
	assert.Equal(t, "succeeded", ActionSucceeded.String())
	assert.Equal(t, "failed", ActionFailed.String())
}
