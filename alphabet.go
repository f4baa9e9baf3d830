package basex

import (
	"fmt"
	"unicode/utf8"
)

// Alphabet maps digit values to output symbols and symbols back to
// digit values. Its length is the radix: alphabet[0] stands for digit
// zero and doubles as the placeholder for leading zero bytes.
//
// Implementations are immutable after construction and safe for
// concurrent use.
type Alphabet interface {
	// Base returns the number of symbols (the radix).
	Base() int

	// Zero returns the leading-zero placeholder symbol, alphabet[0].
	Zero() rune

	// appendSymbol appends the symbol for digit d to dst. Panics if
	// d >= Base(); the conversion engine can never produce such a
	// digit.
	appendSymbol(dst []byte, d uint32) []byte

	// each calls fn with the digit value of every symbol in s, left to
	// right. Stops with a wrapped ErrInvalidChar on the first symbol
	// outside the alphabet, or with fn's error.
	each(s string, fn func(d uint32) error) error

	// leaders counts the leading zero-symbol occurrences in s.
	leaders(s string) int
}

// invalidDigit marks absent entries in the byte reverse-lookup table.
// Valid digits stay below it because a byte alphabet is capped at 255
// symbols.
const invalidDigit = 0xFF

// byteAlphabet is the fast path for single-byte symbols: forward
// lookup indexes the symbol slice, reverse lookup indexes a 256-entry
// table.
type byteAlphabet struct {
	symbols []byte
	lookup  [256]byte
}

// runeAlphabet handles multi-byte symbols. Reverse lookup is a linear
// scan, acceptable because real-world alphabets hold tens of symbols.
type runeAlphabet struct {
	symbols []rune
}

// NewAlphabet builds an Alphabet from the unique symbols of s. The
// single-byte strategy is selected when every symbol is ASCII;
// anything else transparently gets the Unicode strategy.
func NewAlphabet(s string) (Alphabet, error) {
	symbols := []rune(s)
	if len(symbols) < 2 {
		return nil, ErrAlphabetTooShort
	}
	ascii := true
	for _, r := range symbols {
		if r >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return newByteAlphabet([]byte(s))
	}
	return newRuneAlphabet(symbols)
}

// MustNewAlphabet is NewAlphabet for alphabets known to be valid.
// Panics on error.
func MustNewAlphabet(s string) Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic("basex: MustNewAlphabet: " + err.Error())
	}
	return a
}

// NewByteAlphabet builds the single-byte strategy directly from raw
// bytes. Unlike NewAlphabet the symbols need not be ASCII or valid
// UTF-8; the encoded output is then a byte string in disguise.
func NewByteAlphabet(symbols []byte) (Alphabet, error) {
	if len(symbols) < 2 {
		return nil, ErrAlphabetTooShort
	}
	return newByteAlphabet(symbols)
}

func newByteAlphabet(symbols []byte) (*byteAlphabet, error) {
	if len(symbols) > 255 {
		return nil, ErrAlphabetTooLarge
	}
	a := &byteAlphabet{symbols: symbols}
	for i := range a.lookup {
		a.lookup[i] = invalidDigit
	}
	for i, c := range symbols {
		if a.lookup[c] != invalidDigit {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, c)
		}
		a.lookup[c] = byte(i)
	}
	return a, nil
}

func newRuneAlphabet(symbols []rune) (*runeAlphabet, error) {
	seen := make(map[rune]struct{}, len(symbols))
	for _, r := range symbols {
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		seen[r] = struct{}{}
	}
	return &runeAlphabet{symbols: symbols}, nil
}

func (a *byteAlphabet) Base() int {
	return len(a.symbols)
}

func (a *byteAlphabet) Zero() rune {
	return rune(a.symbols[0])
}

func (a *byteAlphabet) appendSymbol(dst []byte, d uint32) []byte {
	if d >= uint32(len(a.symbols)) {
		panic(fmt.Sprintf("basex: digit %d out of range for base %d", d, len(a.symbols)))
	}
	return append(dst, a.symbols[d])
}

func (a *byteAlphabet) each(s string, fn func(d uint32) error) error {
	for i := 0; i < len(s); i++ {
		d := a.lookup[s[i]]
		if d == invalidDigit {
			return fmt.Errorf("%w: %q at index %d", ErrInvalidChar, s[i], i)
		}
		if err := fn(uint32(d)); err != nil {
			return err
		}
	}
	return nil
}

func (a *byteAlphabet) leaders(s string) int {
	zero := a.symbols[0]
	for i := 0; i < len(s); i++ {
		if s[i] != zero {
			return i
		}
	}
	return len(s)
}

func (a *runeAlphabet) Base() int {
	return len(a.symbols)
}

func (a *runeAlphabet) Zero() rune {
	return a.symbols[0]
}

func (a *runeAlphabet) appendSymbol(dst []byte, d uint32) []byte {
	if d >= uint32(len(a.symbols)) {
		panic(fmt.Sprintf("basex: digit %d out of range for base %d", d, len(a.symbols)))
	}
	return utf8.AppendRune(dst, a.symbols[d])
}

func (a *runeAlphabet) each(s string, fn func(d uint32) error) error {
	for i, r := range s {
		d, ok := a.digit(r)
		if !ok {
			return fmt.Errorf("%w: %q at index %d", ErrInvalidChar, r, i)
		}
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}

func (a *runeAlphabet) digit(r rune) (uint32, bool) {
	for i, symbol := range a.symbols {
		if symbol == r {
			return uint32(i), true
		}
	}
	return 0, false
}

func (a *runeAlphabet) leaders(s string) int {
	zero := a.symbols[0]
	count := 0
	for _, r := range s {
		if r != zero {
			break
		}
		count++
	}
	return count
}

// Predefined alphabets for common radices.
var (
	// Base2 uses binary digits as symbols.
	Base2 = MustNewAlphabet("01")

	// Base16 is lowercase hexadecimal.
	Base16 = MustNewAlphabet("0123456789abcdef")

	// Base36 covers digits and lowercase letters.
	Base36 = MustNewAlphabet("0123456789abcdefghijklmnopqrstuvwxyz")

	// Base58 is the Bitcoin alphabet: no 0, O, I, or l.
	Base58 = MustNewAlphabet("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")

	// Base62 covers digits, uppercase, and lowercase letters.
	Base62 = MustNewAlphabet("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")
)
