package game

import (
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// validate checks a normalized guess against the round's rules.
// The order of the checks decides which error the player sees:
// length, characters, first letter, dictionary.
func (g *Game) validate(guess string) error {
	if utf8.RuneCountInString(guess) != g.opts.WordLength {
		return &InvalidGuessError{Guess: guess, Reason: ReasonLength, WantLength: g.opts.WordLength}
	}
	if !words.IsAlpha(guess) {
		return &InvalidGuessError{Guess: guess, Reason: ReasonCharacters}
	}
	if g.opts.RequireFirstLetter {
		if first, _ := utf8.DecodeRuneInString(guess); first != g.secret[0] {
			return &InvalidGuessError{Guess: guess, Reason: ReasonFirstLetter, WantFirst: g.secret[0]}
		}
	}
	if _, ok := g.dictionary[guess]; !ok {
		return &InvalidGuessError{Guess: guess, Reason: ReasonUnknownWord}
	}
	return nil
}
