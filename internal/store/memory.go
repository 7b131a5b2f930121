// internal/store/memory.go
//
// In-memory record of the rounds played in the current session.
// The driver saves every finished round here; the stats table shown when the
// player quits is computed from it.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID, plus play order for streaks.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; nothing is written to disk.
//   - Only finished rounds are accepted.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

var (
	// ErrNotFound is returned by Get for unknown IDs.
	ErrNotFound = errors.New("not found")
	// ErrNotFinished is returned by Save for rounds still in progress.
	ErrNotFinished = errors.New("round not finished")
)

// Stats aggregates the finished rounds of a session.
type Stats struct {
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	// Distribution maps the number of guesses used to the count of rounds
	// won with that many guesses.
	Distribution map[int]int
}

// WinRate is the share of rounds won, in [0, 1].
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played)
}

// Store defines the session record of rounds.
type Store interface {
	// Save records a finished round. Saving the same round twice is a no-op.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a round by ID.
	// Returns ErrNotFound if the round is unknown.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Stats summarizes every round saved so far.
	Stats(ctx context.Context) (Stats, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games and order
	games map[string]*game.Game // keyed by Game.ID
	order []string              // IDs in save order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

// Save adds the round to the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	if !g.IsOver() {
		return ErrNotFinished
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[g.ID]; ok {
		return nil
	}
	m.games[g.ID] = g
	m.order = append(m.order, g.ID)
	return nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

// Stats walks the rounds in play order; a loss resets the current streak.
func (m *memory) Stats(ctx context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := Stats{Distribution: make(map[int]int)}
	for _, id := range m.order {
		g := m.games[id]
		st.Played++
		if g.IsSuccess() {
			st.Wins++
			st.CurrentStreak++
			st.Distribution[len(g.Guesses())]++
		} else {
			st.CurrentStreak = 0
		}
		if st.CurrentStreak > st.MaxStreak {
			st.MaxStreak = st.CurrentStreak
		}
	}
	return st, nil
}
