package basex

import (
	"github.com/standardbeagle/basex/internal/alloc"
	"github.com/standardbeagle/basex/internal/bigint"
)

// Encode converts src to its base-N textual representation under the
// given alphabet. Leading zero bytes become leading zero symbols, one
// each, so they survive the round trip. Empty input encodes to "".
func Encode(a Alphabet, src []byte) string {
	if len(src) == 0 {
		return ""
	}

	leaders := 0
	for leaders < len(src) && src[leaders] == 0 {
		leaders++
	}

	// Digits emerge least significant first from repeated division.
	base := uint32(a.Base())
	big := bigint.New(src)
	digits := make([]uint32, 0, EncodedLen(a.Base(), len(src)))
	for !big.IsZero() {
		digits = append(digits, big.DivMod(base))
	}

	out := make([]byte, 0, leaders+len(digits))
	for i := 0; i < leaders; i++ {
		out = a.appendSymbol(out, 0)
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = a.appendSymbol(out, digits[i])
	}
	return string(out)
}

// EncodeFixed is Encode without allocation: symbols are written into
// dst and the symbol count is returned. Only byte alphabets are
// supported (ErrNotASCII otherwise). Returns ErrBufferTooSmall when
// dst cannot hold the encoding; dst contents are undefined after an
// error. Size dst with EncodedLen.
func EncodeFixed(a Alphabet, dst []byte, src []byte) (int, error) {
	ba, ok := a.(*byteAlphabet)
	if !ok {
		return 0, ErrNotASCII
	}
	if len(src) == 0 {
		return 0, nil
	}

	scratch := alloc.Words.Get((len(src) + 3) / 4)
	defer alloc.Words.Put(scratch)

	big := bigint.NewFixed(scratch)
	if err := big.SetBytes(src); err != nil {
		return 0, err
	}

	// Emit least significant first, zero placeholders last, then
	// reverse in place to put the most significant digit up front.
	base := uint32(ba.Base())
	w := 0
	for !big.IsZero() {
		if w == len(dst) {
			return 0, ErrBufferTooSmall
		}
		dst[w] = ba.symbols[big.DivMod(base)]
		w++
	}
	leaders := 0
	for leaders < len(src) && src[leaders] == 0 {
		if w == len(dst) {
			return 0, ErrBufferTooSmall
		}
		dst[w] = ba.symbols[0]
		w++
		leaders++
	}
	reverse(dst[:w])
	return w, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
