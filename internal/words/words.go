// internal/words/words.go
//
// Word list loading for the game engine.
//
// Responsibilities:
//   - Load the secret pool and the guess dictionary from files or fall back to
//     the embedded defaults in the assets package.
//   - Normalize every entry (see Normalize) and drop duplicates.
//   - Filter lists down to a word length and build lookup sets.
//
// Word Lists:
//   - "secrets":    candidate solutions, the smaller list.
//   - "dictionary": valid guesses, the larger list.
//
// File loading behaviour (FileLoader):
//   1. SecretPath and DictionaryPath both set → one list from each file.
//   2. Only DictionaryPath set → that file serves as both lists.
//   3. Only SecretPath set → error; a guess dictionary is mandatory.
//
// Files hold one word per line; blank lines and lines starting with '#' are
// skipped. Legacy dictionaries can be read as Latin-1 / Windows-1252.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/robalobadob/wordle/apps/go-term/assets"
)

// Lists is the pair of word lists a round is played with.
// Both lists hold normalized words; they are read-only once loaded.
type Lists struct {
	Secrets    []string
	Dictionary []string
}

// WithLength returns a copy of l keeping only words of exactly n letters.
func (l Lists) WithLength(n int) Lists {
	keep := func(w string, _ int) bool { return utf8.RuneCountInString(w) == n }
	return Lists{
		Secrets:    lo.Filter(l.Secrets, keep),
		Dictionary: lo.Filter(l.Dictionary, keep),
	}
}

// Loader supplies the word lists for a game configuration.
type Loader interface {
	Load(ctx context.Context) (Lists, error)
}

// FileLoader reads word lists from disk.
type FileLoader struct {
	SecretPath     string
	DictionaryPath string
	// Encoding of both files: "", "utf-8", "latin1", "iso-8859-1",
	// "iso-8859-15" or "windows-1252".
	Encoding string
}

// Load implements Loader.
func (f FileLoader) Load(ctx context.Context) (Lists, error) {
	if f.DictionaryPath == "" {
		return Lists{}, errors.New("words: dictionary file not configured")
	}
	enc, err := lookupEncoding(f.Encoding)
	if err != nil {
		return Lists{}, err
	}

	dict, err := readWordFile(ctx, f.DictionaryPath, enc)
	if err != nil {
		return Lists{}, err
	}
	secrets := dict
	if f.SecretPath != "" {
		if secrets, err = readWordFile(ctx, f.SecretPath, enc); err != nil {
			return Lists{}, err
		}
	}

	log.Info().
		Str("secrets", f.SecretPath).
		Str("dictionary", f.DictionaryPath).
		Int("secretCount", len(secrets)).
		Int("dictionaryCount", len(dict)).
		Msg("loaded word lists")
	return Lists{Secrets: secrets, Dictionary: dict}, nil
}

// EmbeddedLoader serves the small word lists compiled into the binary.
type EmbeddedLoader struct{}

// Load implements Loader.
func (EmbeddedLoader) Load(ctx context.Context) (Lists, error) {
	if err := ctx.Err(); err != nil {
		return Lists{}, err
	}
	secretLines, err := assets.SecretList()
	if err != nil {
		return Lists{}, fmt.Errorf("embedded secrets: %w", err)
	}
	dictLines, err := assets.DictionaryList()
	if err != nil {
		return Lists{}, fmt.Errorf("embedded dictionary: %w", err)
	}
	l := Lists{Secrets: normalizeAll(secretLines), Dictionary: normalizeAll(dictLines)}
	log.Info().
		Int("secretCount", len(l.Secrets)).
		Int("dictionaryCount", len(l.Dictionary)).
		Msg("loaded embedded word lists")
	return l, nil
}

// Set converts a list of words into a lookup set.
func Set(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// readWordFile loads one word per line from path, decoding it with enc.
func readWordFile(ctx context.Context, path string, enc encoding.Encoding) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return readWords(ctx, f, enc)
}

// readWords scans r line by line, skipping blanks and '#' comments.
func readWords(ctx context.Context, r io.Reader, enc encoding.Encoding) ([]string, error) {
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return normalizeAll(lines), nil
}

// normalizeAll normalizes lines, drops blanks, comments, non-alphabetic
// entries and duplicates, preserving first-seen order.
func normalizeAll(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w := Normalize(s)
		if IsAlpha(w) {
			out = append(out, w)
		}
	}
	return lo.Uniq(out)
}

// lookupEncoding maps a config name to a decoder; nil means UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("words: unsupported encoding %q", name)
	}
}
