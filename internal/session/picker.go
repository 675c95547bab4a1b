package session

import (
	"math/rand/v2"
	"sync"

	"github.com/abhisek/casesim/internal/casebank"
)

// Picker chooses the case for a new session.
type Picker interface {
	Pick() casebank.Case
}

// RandomPicker draws uniformly from the catalog, with replacement.
// It is safe for concurrent use.
type RandomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker returns a picker seeded from the runtime's entropy source.
func NewRandomPicker() *RandomPicker {
	return &RandomPicker{}
}

// NewSeededPicker returns a picker whose sequence of cases is reproducible.
func NewSeededPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns one case; each has probability 1/casebank.Len().
func (p *RandomPicker) Pick() casebank.Case {
	c, _ := casebank.Get(p.index(casebank.Len()))
	return c
}

func (p *RandomPicker) index(n int) int {
	if p.rng == nil {
		return rand.IntN(n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}
