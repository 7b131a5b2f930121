// internal/render/render.go
//
// Terminal presentation of a round.
// Responsibilities:
//   - Board: played rows, the hint row and the remaining empty rows.
//   - Keyboard: every key coloured by the strongest status it has scored.
//   - Result: win/loss message with the revealed word.
//   - Stats: session statistics (see stats.go).
//
// Correct letters are shown on red, misplaced
// letters on yellow. Without colours the same information is carried by
// brackets: [A] correct, (A) present.

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// ANSI escape sequences.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[41m"
	ansiYellow = "\033[43m"
	ansiDim    = "\033[2m"
	ansiClear  = "\033[H\033[2J"
)

// View is the read-only surface of a round the renderer needs.
// *game.Game satisfies it.
type View interface {
	Guesses() []game.ScoredGuess
	HintLetters() []rune
	Letters() map[rune]game.LetterStatus
	IsOver() bool
	IsSuccess() bool
	Solution() (string, bool)
	WordLength() int
	MaxGuesses() int
}

// Layout is a keyboard, one string per row.
type Layout []string

var (
	AZERTY = Layout{"AZERTYUIOP", "QSDFGHJKLM", "WXCVBN"}
	QWERTY = Layout{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}
)

// LayoutByName maps "qwerty" to QWERTY; anything else is AZERTY.
func LayoutByName(name string) Layout {
	if strings.EqualFold(name, "qwerty") {
		return QWERTY
	}
	return AZERTY
}

// Renderer writes rounds to a terminal.
type Renderer struct {
	out    io.Writer
	color  bool
	layout Layout
}

// New returns a Renderer writing to out.
func New(out io.Writer, color bool, layout Layout) *Renderer {
	return &Renderer{out: out, color: color, layout: layout}
}

// NewTerminal returns a Renderer on stdout. Colours are used only when
// stdout is a terminal and noColor is false.
func NewTerminal(noColor bool, layout Layout) *Renderer {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return New(colorable.NewColorableStdout(), tty && !noColor, layout)
}

// Board prints the grid. While the round is in progress the row after the
// last guess shows the hint letters.
func (r *Renderer) Board(v View) {
	var b strings.Builder
	guesses := v.Guesses()
	for _, g := range guesses {
		for _, t := range g {
			b.WriteString(r.tile(t.Letter, t.Status))
		}
		b.WriteByte('\n')
	}

	if !v.IsOver() {
		for _, l := range v.HintLetters() {
			if l == game.Blank {
				b.WriteString(" _ ")
			} else {
				b.WriteString(r.tile(l, game.StatusCorrect))
			}
		}
		b.WriteByte('\n')

		for i := len(guesses) + 1; i < v.MaxGuesses(); i++ {
			b.WriteString(strings.Repeat(" _ ", v.WordLength()))
			b.WriteByte('\n')
		}
	}
	io.WriteString(r.out, b.String())
}

// Keyboard prints the layout with every guessed key marked.
// Keys scored wrong are dimmed, or replaced by '.' without colours.
func (r *Renderer) Keyboard(v View) {
	letters := v.Letters()
	var b strings.Builder
	for i, row := range r.layout {
		b.WriteString(strings.Repeat(" ", i))
		for _, k := range row {
			s, ok := letters[k]
			switch {
			case !ok:
				fmt.Fprintf(&b, " %c ", k)
			case s == game.StatusWrong && r.color:
				b.WriteString(ansiDim + " " + string(k) + " " + ansiReset)
			case s == game.StatusWrong:
				b.WriteString(" . ")
			default:
				b.WriteString(r.tile(k, s))
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(r.out, b.String())
}

// Result prints the end-of-round message. It prints nothing mid-round.
func (r *Renderer) Result(v View) {
	word, ok := v.Solution()
	if !ok {
		return
	}
	if v.IsSuccess() {
		fmt.Fprintf(r.out, "Congratulations! The word was %s (%d/%d).\n", word, len(v.Guesses()), v.MaxGuesses())
		return
	}
	fmt.Fprintf(r.out, "Too bad... the word was %s.\n", word)
}

// Message prints one line.
func (r *Renderer) Message(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Clear wipes the screen between rounds.
func (r *Renderer) Clear() {
	if r.color {
		io.WriteString(r.out, ansiClear)
		return
	}
	io.WriteString(r.out, "\n\n")
}

// tile renders one letter three cells wide.
func (r *Renderer) tile(l rune, s game.LetterStatus) string {
	if r.color {
		switch s {
		case game.StatusCorrect:
			return ansiRed + " " + string(l) + " " + ansiReset
		case game.StatusPresent:
			return ansiYellow + " " + string(l) + " " + ansiReset
		}
		return " " + string(l) + " "
	}
	switch s {
	case game.StatusCorrect:
		return "[" + string(l) + "]"
	case game.StatusPresent:
		return "(" + string(l) + ")"
	}
	return " " + string(l) + " "
}
