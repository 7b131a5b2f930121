// internal/config/config.go
//
// Layered configuration for the terminal client.
//
// Precedence (highest first):
//   1. command line flags        --word-length 6
//   2. environment variables     WORDLE_WORD_LENGTH=6 (a .env file is loaded first)
//   3. optional config file      ./wordle.yaml | wordle.toml | wordle.json
//   4. defaults below
//
// LOG_LEVEL and NO_COLOR are honoured without the prefix.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

const envPrefix = "WORDLE"

// Config holds every setting of a session.
type Config struct {
	WordLength         int
	MaxGuesses         int
	RequireFirstLetter bool

	SecretFile     string
	DictionaryFile string
	WordsEncoding  string

	Seed      int64
	Daily     bool
	DailySalt string

	Keyboard    string
	NoColor     bool
	HistoryFile string
	LogLevel    string
}

// GameOptions returns the engine options for a round.
func (c *Config) GameOptions() game.Options {
	return game.Options{
		WordLength:         c.WordLength,
		MaxGuesses:         c.MaxGuesses,
		RequireFirstLetter: c.RequireFirstLetter,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("word-length", 5)
	v.SetDefault("max-guesses", 6)
	v.SetDefault("require-first-letter", false)
	v.SetDefault("secret-file", "")
	v.SetDefault("dictionary-file", "")
	v.SetDefault("words-encoding", "utf-8")
	v.SetDefault("seed", 0)
	v.SetDefault("daily", false)
	v.SetDefault("daily-salt", "local_dev_salt")
	v.SetDefault("keyboard", "azerty")
	v.SetDefault("no-color", false)
	v.SetDefault("history-file", "")
	v.SetDefault("log-level", "warn")
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wordle", pflag.ContinueOnError)
	fs.Int("word-length", 5, "letters per word")
	fs.Int("max-guesses", 6, "guesses per round")
	fs.Bool("require-first-letter", false, "reveal the first letter and require guesses to start with it")
	fs.String("secret-file", "", "file of secret candidates, one per line")
	fs.String("dictionary-file", "", "file of accepted guesses, one per line")
	fs.String("words-encoding", "utf-8", "encoding of the word files: utf-8, latin1, iso-8859-15, windows-1252")
	fs.Int64("seed", 0, "seed for reproducible secrets (0 = random)")
	fs.Bool("daily", false, "play the word of the day")
	fs.String("daily-salt", "local_dev_salt", "salt for the word of the day")
	fs.String("keyboard", "azerty", "keyboard layout: azerty or qwerty")
	fs.Bool("no-color", false, "disable colours")
	fs.String("history-file", "", "readline history file")
	fs.String("log-level", "warn", "debug|info|warn|error")
	return fs
}

// Load builds the configuration from args (without the program name),
// the environment, an optional config file and defaults.
func Load(args []string) (*Config, error) {
	// Missing .env is normal outside development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("wordle")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	c := &Config{
		WordLength:         v.GetInt("word-length"),
		MaxGuesses:         v.GetInt("max-guesses"),
		RequireFirstLetter: v.GetBool("require-first-letter"),
		SecretFile:         v.GetString("secret-file"),
		DictionaryFile:     v.GetString("dictionary-file"),
		WordsEncoding:      v.GetString("words-encoding"),
		Seed:               v.GetInt64("seed"),
		Daily:              v.GetBool("daily"),
		DailySalt:          v.GetString("daily-salt"),
		Keyboard:           strings.ToLower(v.GetString("keyboard")),
		NoColor:            v.GetBool("no-color"),
		HistoryFile:        v.GetString("history-file"),
		LogLevel:           v.GetString("log-level"),
	}

	// Unprefixed conventions, unless set explicitly with a flag.
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" && !fs.Changed("log-level") && os.Getenv(envPrefix+"_LOG_LEVEL") == "" {
		c.LogLevel = lvl
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings no round could be played with.
func (c *Config) Validate() error {
	if c.WordLength <= 0 {
		return fmt.Errorf("word-length must be positive, got %d", c.WordLength)
	}
	if c.MaxGuesses <= 0 {
		return fmt.Errorf("max-guesses must be positive, got %d", c.MaxGuesses)
	}
	if c.SecretFile != "" && c.DictionaryFile == "" {
		return errors.New("secret-file requires dictionary-file")
	}
	switch c.Keyboard {
	case "azerty", "qwerty":
	default:
		return fmt.Errorf("keyboard must be azerty or qwerty, got %q", c.Keyboard)
	}
	return nil
}
