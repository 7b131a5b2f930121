package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

var lists = words.Lists{
	Secrets:    []string{"CRANE"},
	Dictionary: []string{"TRACE", "MOULT"},
}

func newRound(t *testing.T, opts game.Options, guesses ...string) *game.Game {
	t.Helper()
	g, err := game.New(opts, lists, game.FixedPicker(0))
	require.NoError(t, err)
	for _, w := range guesses {
		_, err := g.SubmitGuess(w)
		require.NoError(t, err)
	}
	return g
}

func TestBoardPlain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, AZERTY)
	r.Board(newRound(t, game.Options{WordLength: 5, MaxGuesses: 3}, "trace"))

	want := "" +
		" T [R][A](C)[E]\n" +
		" _ [R][A] _ [E]\n" +
		" _  _  _  _  _ \n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Board mismatch (-want +got):\n%s", diff)
	}
}

func TestBoardFirstLetterHint(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, AZERTY)
	r.Board(newRound(t, game.Options{WordLength: 5, MaxGuesses: 2, RequireFirstLetter: true}))

	want := "" +
		"[C] _  _  _  _ \n" +
		" _  _  _  _  _ \n"
	assert.Equal(t, want, buf.String())
}

func TestBoardFinishedHasNoHintRow(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, AZERTY)
	g := newRound(t, game.Options{WordLength: 5, MaxGuesses: 6}, "crane")
	r.Board(g)
	assert.Equal(t, "[C][R][A][N][E]\n", buf.String())

	buf.Reset()
	r.Result(g)
	assert.Equal(t, "Congratulations! The word was CRANE (1/6).\n", buf.String())
}

func TestBoardColour(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true, AZERTY)
	r.Board(newRound(t, game.Options{WordLength: 5, MaxGuesses: 2}, "trace"))

	first := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, " T "+ansiRed+" R "+ansiReset+ansiRed+" A "+ansiReset+ansiYellow+" C "+ansiReset+ansiRed+" E "+ansiReset, first)
}

func TestKeyboardPlain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, QWERTY)
	r.Keyboard(newRound(t, game.Options{WordLength: 5, MaxGuesses: 6}, "trace"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " Q  W [E][R] .  Y  U  I  O  P ", lines[0])
	assert.Equal(t, " [A] S  D  F  G  H  J  K  L ", lines[1])
	assert.Equal(t, "   Z  X (C) V  B  N  M ", lines[2])
}

func TestResultLossAndMidRound(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, AZERTY)

	r.Result(newRound(t, game.Options{WordLength: 5, MaxGuesses: 2}, "moult"))
	assert.Empty(t, buf.String())

	r.Result(newRound(t, game.Options{WordLength: 5, MaxGuesses: 2}, "moult", "moult"))
	assert.Equal(t, "Too bad... the word was CRANE.\n", buf.String())
}

func TestStatsTable(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, AZERTY)
	r.Stats(store.Stats{
		Played:        4,
		Wins:          3,
		CurrentStreak: 1,
		MaxStreak:     2,
		Distribution:  map[int]int{1: 1, 2: 2},
	}, 3)

	out := buf.String()
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "##")
	assert.Contains(t, strings.ToUpper(out), "PLAYED")
}

func TestLayoutByName(t *testing.T) {
	assert.Equal(t, QWERTY, LayoutByName("QWERTY"))
	assert.Equal(t, AZERTY, LayoutByName("azerty"))
	assert.Equal(t, AZERTY, LayoutByName(""))
}
