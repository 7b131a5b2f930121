package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

// Stats prints the session summary followed by the distribution of winning
// guess counts, one bar per guess number up to maxGuesses.
func (r *Renderer) Stats(st store.Stats, maxGuesses int) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Played", "Won", "Win %", "Streak", "Best streak"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append([]string{
		strconv.Itoa(st.Played),
		strconv.Itoa(st.Wins),
		fmt.Sprintf("%.0f%%", st.WinRate()*100),
		strconv.Itoa(st.CurrentStreak),
		strconv.Itoa(st.MaxStreak),
	})
	table.Render()

	dist := tablewriter.NewWriter(r.out)
	dist.SetHeader([]string{"Guesses", "Wins", ""})
	dist.SetBorder(false)
	for i := 1; i <= maxGuesses; i++ {
		n := st.Distribution[i]
		dist.Append([]string{strconv.Itoa(i), strconv.Itoa(n), strings.Repeat("#", n)})
	}
	dist.Render()
}
