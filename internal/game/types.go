// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - LetterStatus: per-letter result of a guess (wrong/present/correct).
//   - Tile, ScoredGuess: one scored guess as (letter, status) pairs.
//   - State: coarse round state (playing/won/lost).
//   - Options: the dimensions and rules of a round.
//   - Game: state for a single in-progress or finished round.

package game

// LetterStatus represents the evaluation result for a single letter in a guess.
// The values are ordered by strength: StatusWrong < StatusPresent < StatusCorrect.
type LetterStatus int

const (
	StatusWrong   LetterStatus = iota // letter absent (after multiplicity accounting)
	StatusPresent                     // letter in the secret, other position
	StatusCorrect                     // letter at this exact position
)

// Rank is the strength of s. Both the scorer and the keyboard merge
// compare statuses through Rank only.
func (s LetterStatus) Rank() int { return int(s) }

// Stronger returns whichever of s and o ranks higher.
func (s LetterStatus) Stronger(o LetterStatus) LetterStatus {
	if o.Rank() > s.Rank() {
		return o
	}
	return s
}

func (s LetterStatus) String() string {
	switch s {
	case StatusWrong:
		return "wrong"
	case StatusPresent:
		return "present"
	case StatusCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// Tile is one letter of a scored guess.
type Tile struct {
	Letter rune
	Status LetterStatus
}

// ScoredGuess is an evaluated guess, one Tile per position.
// Values handed out by Game are copies; mutating them does not affect the game.
type ScoredGuess []Tile

// Word returns the guessed word.
func (g ScoredGuess) Word() string {
	rs := make([]rune, len(g))
	for i, t := range g {
		rs[i] = t.Letter
	}
	return string(rs)
}

// Statuses returns the per-position statuses.
func (g ScoredGuess) Statuses() []LetterStatus {
	out := make([]LetterStatus, len(g))
	for i, t := range g {
		out[i] = t.Status
	}
	return out
}

// Solved reports whether every tile is StatusCorrect.
func (g ScoredGuess) Solved() bool {
	if len(g) == 0 {
		return false
	}
	for _, t := range g {
		if t.Status != StatusCorrect {
			return false
		}
	}
	return true
}

// State is the round's position in its state machine.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// Blank marks an unrevealed position in HintLetters.
const Blank rune = 0

// Options describe a round.
type Options struct {
	WordLength         int  // letters per word (typically 5)
	MaxGuesses         int  // guess budget (typically 6)
	RequireFirstLetter bool // guesses must start with the secret's first letter
}

// DefaultOptions is the classic 6x5 board.
func DefaultOptions() Options {
	return Options{WordLength: 5, MaxGuesses: 6}
}

// Game holds the state of a single round.
// All mutation goes through SubmitGuess.
type Game struct {
	ID string // Unique round identifier (random hex string).

	opts       Options
	secret     []rune                // never mutated after New
	dictionary map[string]struct{}   // accepted guesses
	guesses    []ScoredGuess         // append-only history
	letters    map[rune]LetterStatus // strongest status seen per letter
	revealed   []bool                // positions ever scored correct
}
