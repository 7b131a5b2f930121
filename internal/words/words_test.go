package words

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"élève":        "ELEVE",
		"  Crâne\n":    "CRANE",
		"GARÇON":       "GARCON",
		"noël":         "NOEL",
		"e\u0301cole":  "ECOLE",
		"ΐ":            "Ι",
		"abc123":       "ABC123",
		"\u0301 a":     "A",
		"":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"élève", "Ærø", "straße", "ÅNGSTRÖM", "ﬁne", "Ǆemal", "ıi", "mañana",
		"e\u0301\u0301", "\u0301", "\u0301 x", " \t", "ΐ", "日本語", "a b c",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, IsAlpha("CRANE"))
	assert.True(t, IsAlpha("ÆRØ"))
	assert.False(t, IsAlpha("CR4NE"))
	assert.False(t, IsAlpha("CR-NE"))
	assert.False(t, IsAlpha("CR NE"))
	assert.False(t, IsAlpha(""))
}

func TestWithLength(t *testing.T) {
	l := Lists{
		Secrets:    []string{"CRANE", "ARBRE", "PLANTE"},
		Dictionary: []string{"ECOLE", "AVION", "OISEAU", "SOL"},
	}
	got := l.WithLength(5)
	assert.Equal(t, []string{"CRANE", "ARBRE"}, got.Secrets)
	assert.Equal(t, []string{"ECOLE", "AVION"}, got.Dictionary)
	// The receiver is untouched.
	assert.Len(t, l.Secrets, 3)
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestFileLoaderBothFiles(t *testing.T) {
	dir := t.TempDir()
	secret := writeFile(t, dir, "secret.txt", []byte("# answers\nécole\n\nArbre\narbre\n"))
	dict := writeFile(t, dir, "dict.txt", []byte("avion\nrouge\nl'eau\nécole\n"))

	l, err := FileLoader{SecretPath: secret, DictionaryPath: dict}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ECOLE", "ARBRE"}, l.Secrets)
	assert.Equal(t, []string{"AVION", "ROUGE", "ECOLE"}, l.Dictionary)
}

func TestFileLoaderDictionaryOnly(t *testing.T) {
	dir := t.TempDir()
	dict := writeFile(t, dir, "dict.txt", []byte("avion\nrouge\n"))

	l, err := FileLoader{DictionaryPath: dict}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, l.Dictionary, l.Secrets)
}

func TestFileLoaderErrors(t *testing.T) {
	ctx := context.Background()

	_, err := FileLoader{SecretPath: "x"}.Load(ctx)
	assert.Error(t, err)

	_, err = FileLoader{DictionaryPath: filepath.Join(t.TempDir(), "missing.txt")}.Load(ctx)
	assert.ErrorContains(t, err, "open word list")

	_, err = FileLoader{DictionaryPath: "x", Encoding: "ebcdic"}.Load(ctx)
	assert.ErrorContains(t, err, "unsupported encoding")
}

func TestFileLoaderLatin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String("élève\nforêt\n")
	require.NoError(t, err)
	dict := writeFile(t, t.TempDir(), "latin1.txt", []byte(raw))

	l, err := FileLoader{DictionaryPath: dict, Encoding: "latin1"}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ELEVE", "FORET"}, l.Dictionary)
}

func TestReadWordsHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := readWords(ctx, strings.NewReader("avion\n"), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmbeddedLoader(t *testing.T) {
	l, err := EmbeddedLoader{}.Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, l.Secrets)
	require.NotEmpty(t, l.Dictionary)

	for _, w := range append(append([]string{}, l.Secrets...), l.Dictionary...) {
		assert.Equal(t, w, Normalize(w))
		assert.True(t, IsAlpha(w), w)
	}
	assert.Contains(t, l.Secrets, "ECOLE")
	assert.NotEmpty(t, l.WithLength(5).Secrets)

	dict := Set(l.Dictionary)
	for _, w := range l.Secrets {
		_, ok := dict[w]
		assert.True(t, ok, "secret %s missing from dictionary", w)
	}
}
