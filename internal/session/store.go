package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no live session exists for an ID.
var ErrNotFound = errors.New("session not found")

// Store keeps session state keyed by session ID.
type Store interface {
	// Get returns the state for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*State, error)

	// Save stores st under st.ID, replacing any previous value.
	Save(ctx context.Context, st *State) error

	// Delete removes id. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
}
