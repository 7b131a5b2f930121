package game

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Picker selects an index in [0, n) from the secret pool. n is always > 0.
// Injecting it keeps secret selection deterministic under test.
type Picker func(n int) int

// RandomPicker picks uniformly using frand's CSPRNG.
func RandomPicker() Picker {
	return frand.Intn
}

// SeededPicker returns a reproducible picker: the same seed yields the same
// sequence of secrets.
func SeededPicker(seed int64) Picker {
	var key [32]byte
	binary.BigEndian.PutUint64(key[:8], uint64(seed))
	rng := frand.NewCustom(key[:], 1024, 12)
	return rng.Intn
}

// FixedPicker always returns i (clamped to the pool). Useful in tests and
// for replaying a known round.
func FixedPicker(i int) Picker {
	return func(n int) int {
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}
