package basex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodedLen(t *testing.T) {
	assert.Equal(t, 305, EncodedLen(58, 223))
	assert.Equal(t, 1, EncodedLen(58, 0))

	// Power-of-two radices land exactly on the truncation boundary, so
	// pin only the bound: n bytes need at most 8n binary symbols.
	assert.GreaterOrEqual(t, EncodedLen(2, 1), 8)
	assert.GreaterOrEqual(t, EncodedLen(2, 4), 32)
	assert.GreaterOrEqual(t, EncodedLen(16, 2), 4)
}

func TestDecodedLen(t *testing.T) {
	// An upper bound must cover the all-zero-symbol input, which
	// decodes to one byte per symbol.
	assert.GreaterOrEqual(t, DecodedLen(2, 16), 16)
	assert.GreaterOrEqual(t, DecodedLen(58, 8), 8)

	// And the dense case: 305 base-58 symbols can carry 223 bytes.
	assert.GreaterOrEqual(t, DecodedLen(58, 305), 223)
}

func TestDecodedLen_CoversSingleSymbol(t *testing.T) {
	// The naive log formula rounds down to zero here; the bound must
	// still admit the one byte that decoding "z" produces.
	decoded, err := Decode(Base58, "z")
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(decoded), DecodedLen(58, 1))
}

func TestSizingPanicsOnBadBase(t *testing.T) {
	assert.Panics(t, func() { EncodedLen(1, 10) })
	assert.Panics(t, func() { DecodedLen(0, 10) })
}

// Bound property over a spread of bases and sizes: every encoding fits
// the advertised buffer sizes in both directions.
func TestSizingBounds(t *testing.T) {
	alphabets := []Alphabet{Base2, Base16, Base36, Base58, Base62}

	for _, a := range alphabets {
		for n := 0; n <= 64; n += 7 {
			input := make([]byte, n)
			for i := range input {
				input[i] = byte(i * 37)
			}

			encoded := Encode(a, input)
			assert.LessOrEqual(t, len(encoded), EncodedLen(a.Base(), n), "base %d n %d", a.Base(), n)

			decoded, err := Decode(a, encoded)
			assert.NoError(t, err)
			assert.LessOrEqual(t, len(decoded), DecodedLen(a.Base(), len(encoded)), "base %d n %d", a.Base(), n)
		}
	}
}
