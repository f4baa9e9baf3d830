package basex

import (
	"testing"

	"github.com/standardbeagle/basex/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet_SelectsByteStrategy(t *testing.T) {
	a, err := NewAlphabet(testhelpers.AlphabetBase58)

	require.NoError(t, err)
	assert.IsType(t, &byteAlphabet{}, a)
	assert.Equal(t, 58, a.Base())
	assert.Equal(t, '1', a.Zero())
}

func TestNewAlphabet_SelectsRuneStrategy(t *testing.T) {
	a, err := NewAlphabet(testhelpers.AlphabetEmoji)

	require.NoError(t, err)
	assert.IsType(t, &runeAlphabet{}, a)
	assert.Equal(t, 2, a.Base())
	assert.Equal(t, '\U0001F610', a.Zero())
}

func TestNewAlphabet_Validation(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		wantErr error
	}{
		{"empty", "", ErrAlphabetTooShort},
		{"single symbol", "a", ErrAlphabetTooShort},
		{"single rune symbol", "😀", ErrAlphabetTooShort},
		{"duplicate byte", "abca", ErrDuplicateSymbol},
		{"duplicate rune", "😐😀😐", ErrDuplicateSymbol},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAlphabet(tc.symbols)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewByteAlphabet_AllowsNonASCII(t *testing.T) {
	a, err := NewByteAlphabet([]byte{0x80, 0x81, 0x82})

	require.NoError(t, err)
	assert.Equal(t, 3, a.Base())
}

func TestNewByteAlphabet_TooLarge(t *testing.T) {
	symbols := make([]byte, 256)
	for i := range symbols {
		symbols[i] = byte(i)
	}

	_, err := NewByteAlphabet(symbols)

	assert.ErrorIs(t, err, ErrAlphabetTooLarge)
}

func TestMustNewAlphabet_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustNewAlphabet("") })
	assert.NotPanics(t, func() { MustNewAlphabet("01") })
}

func TestByteAlphabet_ReverseLookup(t *testing.T) {
	a := MustNewAlphabet(testhelpers.AlphabetBase62)

	var digits []uint32
	err := a.each("0Az", func(d uint32) error {
		digits = append(digits, d)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 10, 61}, digits)
}

func TestRuneAlphabet_ReverseLookup(t *testing.T) {
	a := MustNewAlphabet(testhelpers.AlphabetEmoji)

	var digits []uint32
	err := a.each("😀😐😀", func(d uint32) error {
		digits = append(digits, d)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 0, 1}, digits)
}

func TestLeaders(t *testing.T) {
	base58 := MustNewAlphabet(testhelpers.AlphabetBase58)
	emoji := MustNewAlphabet(testhelpers.AlphabetEmoji)

	tests := []struct {
		name string
		a    Alphabet
		s    string
		want int
	}{
		{"none", base58, "abc", 0},
		{"some", base58, "11abc", 2},
		{"all", base58, "1111", 4},
		{"empty", base58, "", 0},
		{"rune leaders", emoji, "😐😐😀", 2},
		{"rune none", emoji, "😀😐", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.leaders(tc.s))
		})
	}
}

func TestAppendSymbol_PanicsOnBadDigit(t *testing.T) {
	a := MustNewAlphabet("01")

	assert.Panics(t, func() { a.appendSymbol(nil, 2) })
}
