package bignum

import (
	"io"
	"math/rand"
)

// SeededSource returns a deterministic io.Reader suitable for reproducible
// tests: math/rand.Rand implements Read regardless of its underlying Source,
// so it satisfies every function in this package that accepts an io.Reader
// randomness source.
func SeededSource(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed))
}
