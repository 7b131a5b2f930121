// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// Every player with the same salt gets the same secret on the same UTC date;
// the index is HMAC-SHA256(salt, YYYY-MM-DD) modulo the pool size.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % poolLen.
func WordIndex(date time.Time, salt string, poolLen int) int {
	if poolLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(poolLen))
}

// Picker returns a secret picker bound to date; it satisfies game.Picker.
func Picker(date time.Time, salt string) func(n int) int {
	return func(n int) int { return WordIndex(date, salt, n) }
}
