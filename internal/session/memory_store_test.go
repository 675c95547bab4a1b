package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/casesim/internal/casebank"
)

func TestMemoryStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	st := New(&fixedPicker{diagnosis: casebank.AntidepressantInducedMania})
	st.Reveal(casebank.SectionSuicide)
	if err := s.Save(ctx, st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, st.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Case.Diagnosis != casebank.AntidepressantInducedMania {
		t.Errorf("diagnosis = %q", got.Case.Diagnosis)
	}
	if !got.IsRevealed(casebank.SectionSuicide) || got.RevealedCount() != 1 {
		t.Errorf("revealed = %v, want [suicide]", got.Revealed())
	}
	if !got.CreatedAt.Equal(st.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, st.CreatedAt)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	st := New(&fixedPicker{diagnosis: casebank.BipolarManic})
	_ = s.Save(ctx, st)

	// Mutating without Save must not leak into the store.
	st.Reveal(casebank.SectionHistory)

	got, _ := s.Get(ctx, st.ID)
	if got.IsRevealed(casebank.SectionHistory) {
		t.Error("unsaved reveal visible through store")
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	s := NewMemoryStore(0)
	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	st := New(&fixedPicker{diagnosis: casebank.BipolarManic})
	_ = s.Save(ctx, st)
	if err := s.Delete(ctx, st.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, st.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete err = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, st.ID); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewMemoryStore(30 * time.Minute)
	s.now = func() time.Time { return now }

	st := New(&fixedPicker{diagnosis: casebank.BipolarManic})
	_ = s.Save(ctx, st)

	now = now.Add(29 * time.Minute)
	if _, err := s.Get(ctx, st.ID); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}

	// Save slides the deadline.
	_ = s.Save(ctx, st)
	now = now.Add(29 * time.Minute)
	if _, err := s.Get(ctx, st.ID); err != nil {
		t.Fatalf("Get after sliding save: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := s.Get(ctx, st.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after expiry err = %v, want ErrNotFound", err)
	}
	if s.Len() != 0 {
		t.Errorf("expired entry not dropped, Len() = %d", s.Len())
	}
}

func TestMemoryStore_SweepOnSave(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	p := &cyclePicker{}
	_ = s.Save(ctx, New(p))
	_ = s.Save(ctx, New(p))

	now = now.Add(2 * time.Minute)
	_ = s.Save(ctx, New(p))

	if s.Len() != 1 {
		t.Errorf("Len() = %d after sweep, want 1", s.Len())
	}
}
