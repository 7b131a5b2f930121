// internal/game/errors.go
//
// Error kinds returned by the engine:
//   - ConfigurationError: a round cannot be created with these settings.
//   - InvalidGuessError:  a guess was rejected; it does not cost an attempt.
//   - GameOverError:      a guess arrived after the round finished.
//
// Callers inspect them with errors.As.

package game

import "fmt"

// ConfigurationError reports settings no round can be created from.
type ConfigurationError struct {
	WordLength int
	MaxGuesses int
	Msg        string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Msg
}

// Reason identifies which validation check rejected a guess.
type Reason int

const (
	ReasonLength      Reason = iota // wrong number of letters
	ReasonCharacters                // contains non-letters
	ReasonFirstLetter               // does not start with the secret's first letter
	ReasonUnknownWord               // not in the dictionary
)

func (r Reason) String() string {
	switch r {
	case ReasonLength:
		return "length"
	case ReasonCharacters:
		return "characters"
	case ReasonFirstLetter:
		return "first_letter"
	case ReasonUnknownWord:
		return "unknown_word"
	default:
		return "unknown"
	}
}

// InvalidGuessError reports a rejected guess.
type InvalidGuessError struct {
	Guess  string // normalized guess
	Reason Reason

	WantLength int  // set for ReasonLength
	WantFirst  rune // set for ReasonFirstLetter
}

func (e *InvalidGuessError) Error() string {
	switch e.Reason {
	case ReasonLength:
		return fmt.Sprintf("guess must have %d letters", e.WantLength)
	case ReasonCharacters:
		return fmt.Sprintf("guess %q contains invalid characters", e.Guess)
	case ReasonFirstLetter:
		return fmt.Sprintf("guess %q must start with the letter %c", e.Guess, e.WantFirst)
	case ReasonUnknownWord:
		return fmt.Sprintf("guess %q is not in the dictionary", e.Guess)
	default:
		return fmt.Sprintf("invalid guess %q", e.Guess)
	}
}

// GameOverError reports a guess submitted to a finished round.
type GameOverError struct {
	State State
}

func (e *GameOverError) Error() string {
	return "game finished (" + e.State.String() + "): no more guesses"
}
