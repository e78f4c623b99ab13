package services

import (
	"context"
	"sync"

	"eventconnect/internal/domain"
)

// ActionState is the lifecycle of a single user-triggered mutation.
type ActionState int

const (
	ActionIdle ActionState = iota
	ActionPending
	ActionSucceeded
	ActionFailed
)

func (s ActionState) String() string {
	switch s {
	case ActionIdle:
		return "idle"
	case ActionPending:
		return "pending"
	case ActionSucceeded:
		return "succeeded"
	case ActionFailed:
		return "failed"
	}
	return "unknown"
}

// Action tracks one mutating call through idle, pending and a terminal
// state, so the UI binds to the machine instead of mutating its lists
// speculatively. A terminal state can be re-run; a pending one cannot.
type Action struct {
	mu    sync.Mutex
	state ActionState
	err   error
}

// Run executes fn, recording pending before and the terminal state after.
// It returns domain.ErrActionPending when a previous run is still in
// flight, and otherwise whatever fn returned.
func (a *Action) Run(ctx context.Context, fn func(context.Context) error) error {
	a.mu.Lock()
	if a.state == ActionPending {
		a.mu.Unlock()
		return domain.ErrActionPending
	}
	a.state = ActionPending
	a.err = nil
	a.mu.Unlock()

	err := fn(ctx)

	a.mu.Lock()
	if err != nil {
		a.state = ActionFailed
		a.err = err
	} else {
		a.state = ActionSucceeded
	}
	a.mu.Unlock()
	return err
}

// State returns the current machine state.
func (a *Action) State() ActionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Err returns the error of the last failed run, nil otherwise.
func (a *Action) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}
