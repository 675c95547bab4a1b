package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/casesim/internal/casebank"
)

// Manager creates, updates and resets sessions held in a Store.
type Manager struct {
	store  Store
	picker Picker
	logger *slog.Logger
}

// NewManager wires a store and picker. A nil logger discards output.
func NewManager(store Store, picker Picker, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{store: store, picker: picker, logger: logger}
}

// Load returns the session for id. When id is empty, unknown or expired a
// new session is created and saved; created reports which happened.
func (m *Manager) Load(ctx context.Context, id string) (st *State, created bool, err error) {
	if id != "" {
		st, err = m.store.Get(ctx, id)
		if err == nil {
			return st, false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, false, fmt.Errorf("load session: %w", err)
		}
	}

	st, err = m.create(ctx)
	if err != nil {
		return nil, false, err
	}
	return st, true, nil
}

// Reveal shows a section and persists the change.
func (m *Manager) Reveal(ctx context.Context, st *State, sec casebank.Section) error {
	st.Reveal(sec)
	if err := m.store.Save(ctx, st); err != nil {
		return fmt.Errorf("reveal %s: %w", sec, err)
	}
	m.logger.DebugContext(ctx, "section revealed", "session_id", st.ID, "section", string(sec))
	return nil
}

// Submit grades a guess. Verdicts are not stored.
func (m *Manager) Submit(ctx context.Context, st *State, choice casebank.Diagnosis) Verdict {
	v := st.Check(choice)
	m.logger.InfoContext(ctx, "diagnosis submitted",
		"session_id", st.ID,
		"choice", choice.Slug(),
		"correct", v.Correct,
	)
	return v
}

// Reset discards the session for id and starts a new one under a new ID.
func (m *Manager) Reset(ctx context.Context, id string) (*State, error) {
	if id != "" {
		if err := m.store.Delete(ctx, id); err != nil {
			return nil, fmt.Errorf("reset session: %w", err)
		}
	}
	st, err := m.create(ctx)
	if err != nil {
		return nil, err
	}
	m.logger.InfoContext(ctx, "session reset", "previous_id", id, "session_id", st.ID)
	return st, nil
}

func (m *Manager) create(ctx context.Context) (*State, error) {
	st := New(m.picker)
	if err := m.store.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	m.logger.InfoContext(ctx, "session created", "session_id", st.ID)
	return st, nil
}
