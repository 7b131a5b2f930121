// internal/term/session.go
//
// Interactive driver for the terminal game.
// Responsibilities:
//   - Start rounds and prompt for guesses until each round is over.
//   - Re-prompt on rejected guesses; they never cost an attempt.
//   - Record finished rounds in the session store.
//   - Ask to play again, and print session stats on the way out.
//
// Input comes from a LineReader: chzyer/readline in production, a scripted
// reader in tests. Ctrl-C, EOF and a cancelled context all end the session
// cleanly; an unfinished round is simply dropped.

package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/render"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// errQuit signals that the player left mid-prompt.
var errQuit = errors.New("quit")

// LineReader is the input side of the terminal.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Session plays rounds against one set of word lists.
type Session struct {
	Opts     game.Options
	Lists    words.Lists
	Pick     game.Picker // nil picks uniformly at random
	Store    store.Store
	Render   *render.Renderer
	In       LineReader
	OneRound bool // stop after the first round (word of the day)
}

// Run plays rounds until the player declines another one or input ends.
// A configuration error from the first round is returned as is.
func (s *Session) Run(ctx context.Context) error {
	for {
		g, err := s.PlayRound(ctx)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return err
		}
		log.Info().Str("game", g.ID).Str("state", g.State().String()).Int("guesses", len(g.Guesses())).Msg("round finished")

		if s.OneRound {
			break
		}
		again, err := s.askAgain(ctx)
		if err != nil && !errors.Is(err, errQuit) {
			return err
		}
		if !again {
			break
		}
		s.Render.Clear()
	}

	st, err := s.Store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("session stats: %w", err)
	}
	if st.Played > 0 {
		s.Render.Stats(st, s.Opts.MaxGuesses)
	}
	return nil
}

// PlayRound plays a single round to its end and saves it.
// It returns errQuit if the player leaves first.
func (s *Session) PlayRound(ctx context.Context) (*game.Game, error) {
	g, err := game.New(s.Opts, s.Lists, s.Pick)
	if err != nil {
		return nil, err
	}
	log.Info().Str("game", g.ID).Int("wordLength", g.WordLength()).Int("maxGuesses", g.MaxGuesses()).Msg("round started")

	for !g.IsOver() {
		s.Render.Board(g)
		s.Render.Keyboard(g)

		s.In.SetPrompt(fmt.Sprintf("guess %d/%d> ", len(g.Guesses())+1, g.MaxGuesses()))
		line, err := s.readLine(ctx)
		if err != nil {
			return g, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		_, err = g.SubmitGuess(line)
		var invalid *game.InvalidGuessError
		if errors.As(err, &invalid) {
			log.Debug().Str("game", g.ID).Str("reason", invalid.Reason.String()).Msg("guess rejected")
			s.Render.Message("%s", invalid.Error())
			continue
		}
		if err != nil {
			return g, err
		}
	}

	s.Render.Board(g)
	s.Render.Result(g)
	if err := s.Store.Save(ctx, g); err != nil {
		return g, fmt.Errorf("save round: %w", err)
	}
	return g, nil
}

// askAgain asks until it gets a yes or a no.
func (s *Session) askAgain(ctx context.Context) (bool, error) {
	s.In.SetPrompt("play again? (yes/no)> ")
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y", "oui", "o":
			return true, nil
		case "no", "n", "non":
			return false, nil
		}
		s.Render.Message("please answer yes or no")
	}
}

// readLine maps the ways a player can leave onto errQuit.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", errQuit
	}
	line, err := s.In.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
		return "", errQuit
	default:
		return "", fmt.Errorf("read input: %w", err)
	}
}
