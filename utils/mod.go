package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMax returns the index of the last maximum element, or -1 for an empty
// slice.
func ArgMax[T constraints.Ordered](slice []T) int {
	best := -1
	for i, v := range slice {
		if best < 0 || v >= slice[best] {
			best = i
		}
	}
	return best
}

// Entropy returns a seed read from the operating system, falling back to the
// wall clock if that fails.
func Entropy() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewRand returns a generator seeded from Entropy.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(Entropy()))
}
