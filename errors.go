package basex

import (
	"errors"

	"github.com/standardbeagle/basex/internal/bigint"
)

// Common errors for codec operations. All error conditions are
// deterministic functions of the alphabet, the input, and the buffer
// sizes: there is nothing to retry, the caller fixes the input or the
// sizing.
var (
	// ErrInvalidChar reports an input symbol that is not part of the
	// alphabet. Returned wrapped with the offending rune and position.
	ErrInvalidChar = errors.New("invalid character in encoded string")

	// ErrCapacity reports a fixed-capacity big integer that would need
	// more words than its backing holds. Always caller mis-sizing,
	// never silent truncation.
	ErrCapacity = bigint.ErrCapacity

	// ErrBufferTooSmall reports a caller-supplied output buffer that
	// cannot hold the result.
	ErrBufferTooSmall = bigint.ErrBufferTooSmall

	// ErrNotASCII reports a fixed-path call with a multi-byte-symbol
	// alphabet; the fixed paths only support the single-byte fast path.
	ErrNotASCII = errors.New("fixed-path codec requires a single-byte alphabet")
)

// Alphabet construction errors
var (
	ErrAlphabetTooShort = errors.New("alphabet needs at least two symbols")
	ErrAlphabetTooLarge = errors.New("byte alphabet limited to 255 symbols")
	ErrDuplicateSymbol  = errors.New("alphabet contains duplicate symbol")
)
