// main.go
//
// Entry point for the terminal word game.
//
// Startup:
//   1. Load configuration (.env, config file, WORDLE_* env, flags).
//   2. Configure zerolog on stderr so logs never mix with the board.
//   3. Load word lists from files or the embedded defaults.
//   4. Run the interactive session until the player quits.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/render"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
	"github.com/robalobadob/wordle/apps/go-term/internal/term"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lists, err := loader(cfg).Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	rl, err := term.NewReadline(cfg.HistoryFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open terminal")
	}
	defer rl.Close()

	sess := &term.Session{
		Opts:     cfg.GameOptions(),
		Lists:    lists,
		Pick:     picker(cfg),
		Store:    store.NewMemoryStore(),
		Render:   render.NewTerminal(cfg.NoColor, render.LayoutByName(cfg.Keyboard)),
		In:       rl,
		OneRound: cfg.Daily,
	}
	if err := sess.Run(ctx); err != nil {
		var cfgErr *game.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Error().Err(err).Int("wordLength", cfgErr.WordLength).Msg("cannot start a round")
		} else {
			log.Error().Err(err).Msg("session ended")
		}
		rl.Close()
		os.Exit(1)
	}
}

// setupLogging installs a console writer on stderr at the given level.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using warn")
	}
}

// loader picks the word source: files when configured, embedded otherwise.
func loader(cfg *config.Config) words.Loader {
	if cfg.DictionaryFile == "" {
		return words.EmbeddedLoader{}
	}
	return words.FileLoader{
		SecretPath:     cfg.SecretFile,
		DictionaryPath: cfg.DictionaryFile,
		Encoding:       cfg.WordsEncoding,
	}
}

// picker chooses how secrets are drawn: word of the day, seeded, or random.
func picker(cfg *config.Config) game.Picker {
	switch {
	case cfg.Daily:
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("daily mode")
		return daily.Picker(time.Now(), cfg.DailySalt)
	case cfg.Seed != 0:
		return game.SeededPicker(cfg.Seed)
	default:
		return game.RandomPicker()
	}
}
