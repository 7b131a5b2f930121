package daily

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDateKeyUsesUTC(t *testing.T) {
	is := is.New(t)
	paris := time.FixedZone("CET", 3600)
	// 00:30 in Paris is still the previous day in UTC.
	d := time.Date(2024, 3, 2, 0, 30, 0, 0, paris)
	is.Equal(DateKey(d), "2024-03-01")
}

func TestWordIndexStablePerDay(t *testing.T) {
	is := is.New(t)
	morning := time.Date(2024, 5, 10, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC)

	a := WordIndex(morning, "salt", 80)
	is.Equal(a, WordIndex(evening, "salt", 80))
	is.True(a >= 0 && a < 80)
	is.Equal(WordIndex(morning, "salt", 0), 0)
}

func TestWordIndexVariesAcrossDays(t *testing.T) {
	is := is.New(t)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(start.AddDate(0, 0, i), "salt", 1000)] = true
	}
	// 30 draws from 1000 slots; a handful of collisions at most.
	is.True(len(seen) > 20)
}

func TestPickerMatchesWordIndex(t *testing.T) {
	is := is.New(t)
	d := time.Date(2024, 7, 14, 9, 0, 0, 0, time.UTC)
	pick := Picker(d, "pepper")
	is.Equal(pick(57), WordIndex(d, "pepper", 57))
}
