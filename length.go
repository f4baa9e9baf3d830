package basex

import (
	"fmt"
	"math"
)

// EncodedLen returns an upper bound on the number of symbols Encode
// produces for n input bytes in the given base. Fixed-path callers
// size their output buffers with it; the bound is not exact for every
// input, so compare against the returned symbol count, not the buffer
// length. Panics if base < 2.
func EncodedLen(base, n int) int {
	est := int(float64(n)*ratio(base)) + 1
	// Leading zero bytes cost one symbol each, which can dominate the
	// logarithmic estimate when base > 256.
	if est < n {
		est = n
	}
	return est
}

// DecodedLen returns an upper bound on the number of bytes Decode
// produces for n input symbols in the given base. Panics if base < 2.
func DecodedLen(base, n int) int {
	est := int(float64(n)/ratio(base)) + 1
	// Leading zero symbols cost one byte each.
	if est < n && base < 256 {
		est = n
	}
	return est
}

// backingLen returns the word count sufficient to hold any value
// decoded from n symbols in the given base. Leading zero symbols never
// reach the big integer, so no leader allowance is needed here.
func backingLen(base, n int) int {
	bytes := int(float64(n)/ratio(base)) + 1
	return (bytes + 3) / 4
}

// ratio is the symbols-per-byte expansion factor for a radix.
func ratio(base int) float64 {
	if base < 2 {
		panic(fmt.Sprintf("basex: invalid base %d", base))
	}
	return math.Log(256) / math.Log(float64(base))
}
