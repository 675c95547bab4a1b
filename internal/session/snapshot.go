package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/casesim/internal/casebank"
)

// snapshot is the stored form of a State. The case is referenced by its
// diagnosis slug, which is unique within the catalog.
type snapshot struct {
	ID        string    `json:"id"`
	Diagnosis string    `json:"diagnosis"`
	Revealed  []string  `json:"revealed"`
	CreatedAt time.Time `json:"created_at"`
}

func encodeState(st *State) ([]byte, error) {
	snap := snapshot{
		ID:        st.ID,
		Diagnosis: st.Case.Diagnosis.Slug(),
		Revealed:  []string{},
		CreatedAt: st.CreatedAt,
	}
	for _, sec := range st.Revealed() {
		snap.Revealed = append(snap.Revealed, string(sec))
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", st.ID, err)
	}
	return data, nil
}

func decodeState(data []byte) (*State, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	d, err := casebank.ParseDiagnosis(snap.Diagnosis)
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", snap.ID, err)
	}
	c, ok := casebank.ByDiagnosis(d)
	if !ok {
		return nil, fmt.Errorf("decode session %s: no case for %s", snap.ID, snap.Diagnosis)
	}

	st := newState(snap.ID, c, snap.CreatedAt)
	for _, key := range snap.Revealed {
		sec, err := casebank.ParseSection(key)
		if err != nil {
			return nil, fmt.Errorf("decode session %s: %w", snap.ID, err)
		}
		st.Reveal(sec)
	}
	return st, nil
}
