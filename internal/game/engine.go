// internal/game/engine.go
//
// Core game engine for a single round.
// Responsibilities:
//   - Create rounds from Options, word lists and an injected Picker.
//   - Validate and apply guesses (length, alphabetic, first letter, dictionary).
//   - Score guesses using the classic two‑pass algorithm.
//   - Track the aggregate keyboard state and the cumulative hint row.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Word lists come from the words package and are expected to be
//     normalized already; only guesses are normalized here.
//   - The secret is never exposed before the round is over (see Solution).

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// New constructs a round.
// The secret is lists.Secrets[pick(n)] among the n secrets of
// opts.WordLength letters; a nil pick selects uniformly at random.
// Secrets of the right length are always accepted as guesses.
func New(opts Options, lists words.Lists, pick Picker) (*Game, error) {
	if opts.WordLength <= 0 || opts.MaxGuesses <= 0 {
		return nil, &ConfigurationError{
			WordLength: opts.WordLength,
			MaxGuesses: opts.MaxGuesses,
			Msg:        fmt.Sprintf("word length and max guesses must be positive (got %d, %d)", opts.WordLength, opts.MaxGuesses),
		}
	}
	pool := lists.WithLength(opts.WordLength)
	if len(pool.Secrets) == 0 {
		return nil, &ConfigurationError{
			WordLength: opts.WordLength,
			MaxGuesses: opts.MaxGuesses,
			Msg:        fmt.Sprintf("no secret word of %d letters", opts.WordLength),
		}
	}
	if pick == nil {
		pick = RandomPicker()
	}
	i := pick(len(pool.Secrets))
	if i < 0 || i >= len(pool.Secrets) {
		return nil, &ConfigurationError{
			WordLength: opts.WordLength,
			MaxGuesses: opts.MaxGuesses,
			Msg:        fmt.Sprintf("picker returned index %d outside [0, %d)", i, len(pool.Secrets)),
		}
	}

	dict := words.Set(pool.Dictionary)
	for _, w := range pool.Secrets {
		dict[w] = struct{}{}
	}

	return &Game{
		ID:         randomID(),
		opts:       opts,
		secret:     []rune(pool.Secrets[i]),
		dictionary: dict,
		guesses:    []ScoredGuess{},
		letters:    make(map[rune]LetterStatus),
		revealed:   make([]bool, opts.WordLength),
	}, nil
}

// SubmitGuess validates, scores and records a guess.
//
// Errors:
//   - *GameOverError if the round is already finished.
//   - *InvalidGuessError if the normalized guess breaks a rule; the attempt
//     is not counted.
//
// On success the guess is appended to the history and the keyboard state is
// merged; the returned ScoredGuess is the caller's copy.
func (g *Game) SubmitGuess(raw string) (ScoredGuess, error) {
	if g.IsOver() {
		return nil, &GameOverError{State: g.State()}
	}
	guess := words.Normalize(raw)
	if err := g.validate(guess); err != nil {
		return nil, err
	}

	scored := score(g.secret, []rune(guess))
	g.guesses = append(g.guesses, scored)

	for i, t := range scored {
		if prev, ok := g.letters[t.Letter]; ok {
			g.letters[t.Letter] = prev.Stronger(t.Status)
		} else {
			g.letters[t.Letter] = t.Status
		}
		if t.Status == StatusCorrect {
			g.revealed[i] = true
		}
	}
	return cloneGuess(scored), nil
}

// score implements the two‑pass algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non‑correct) secret letters.
//
// Pass 2:
//   - For each unresolved guess letter: if the letter is still counted,
//     mark present and decrement; otherwise mark wrong.
//
// This keeps repeated letters honest: secret ABBEY against BBBBB yields
// wrong, correct, correct, wrong, wrong.
func score(secret, guess []rune) ScoredGuess {
	n := len(guess)
	res := make(ScoredGuess, n)
	remaining := make(map[rune]int, n)

	// First pass: correct tiles, and counts for the rest of the secret.
	for i := 0; i < n; i++ {
		res[i].Letter = guess[i]
		if guess[i] == secret[i] {
			res[i].Status = StatusCorrect
		} else {
			remaining[secret[i]]++
		}
	}

	// Second pass: present/wrong for unresolved tiles.
	for i := 0; i < n; i++ {
		if res[i].Status == StatusCorrect {
			continue
		}
		if remaining[guess[i]] > 0 {
			res[i].Status = StatusPresent
			remaining[guess[i]]--
		} else {
			res[i].Status = StatusWrong
		}
	}
	return res
}

// IsOver reports whether the round accepts no more guesses.
func (g *Game) IsOver() bool {
	return len(g.guesses) >= g.opts.MaxGuesses || g.IsSuccess()
}

// IsSuccess reports whether the most recent guess solved the round.
func (g *Game) IsSuccess() bool {
	if len(g.guesses) == 0 {
		return false
	}
	return g.guesses[len(g.guesses)-1].Solved()
}

// State reports the round's state.
func (g *Game) State() State {
	switch {
	case g.IsSuccess():
		return StateWon
	case g.IsOver():
		return StateLost
	default:
		return StatePlaying
	}
}

// Solution returns the secret once the round is over.
// While the round is in progress it returns ("", false).
func (g *Game) Solution() (string, bool) {
	if !g.IsOver() {
		return "", false
	}
	return string(g.secret), true
}

// HintLetters returns one rune per position: the secret letter where any
// guess so far scored it correct, Blank elsewhere. With RequireFirstLetter
// the first position is always revealed.
func (g *Game) HintLetters() []rune {
	out := make([]rune, g.opts.WordLength)
	for i := range out {
		if g.revealed[i] || (i == 0 && g.opts.RequireFirstLetter) {
			out[i] = g.secret[i]
		} else {
			out[i] = Blank
		}
	}
	return out
}

// FirstLetter returns the secret's first letter when the round requires
// guesses to start with it; otherwise it reveals nothing.
func (g *Game) FirstLetter() (rune, bool) {
	if !g.opts.RequireFirstLetter {
		return Blank, false
	}
	return g.secret[0], true
}

// Guesses returns a copy of the guess history, oldest first.
func (g *Game) Guesses() []ScoredGuess {
	return lo.Map(g.guesses, func(sg ScoredGuess, _ int) ScoredGuess { return cloneGuess(sg) })
}

// Letters returns a copy of the aggregate keyboard state: for every letter
// guessed so far, the strongest status it has scored.
func (g *Game) Letters() map[rune]LetterStatus {
	out := make(map[rune]LetterStatus, len(g.letters))
	for r, s := range g.letters {
		out[r] = s
	}
	return out
}

// StatusOf returns the aggregate status of r and whether r was guessed.
func (g *Game) StatusOf(r rune) (LetterStatus, bool) {
	s, ok := g.letters[r]
	return s, ok
}

// WordLength is the number of letters per word.
func (g *Game) WordLength() int { return g.opts.WordLength }

// MaxGuesses is the guess budget.
func (g *Game) MaxGuesses() int { return g.opts.MaxGuesses }

// Remaining is the number of guesses left.
func (g *Game) Remaining() int { return g.opts.MaxGuesses - len(g.guesses) }

func cloneGuess(sg ScoredGuess) ScoredGuess {
	out := make(ScoredGuess, len(sg))
	copy(out, sg)
	return out
}

// randomID returns a compact 16‑hex‑char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
