package basex

import (
	"github.com/standardbeagle/basex/internal/alloc"
	"github.com/standardbeagle/basex/internal/bigint"
)

// Decode recovers the bytes encoded in s under the given alphabet.
// Each symbol folds into the running value with Horner's method, then
// one zero byte is restored per leading zero symbol. Returns a wrapped
// ErrInvalidChar if s contains any symbol outside the alphabet. Empty
// input decodes to empty output.
func Decode(a Alphabet, s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}

	base := uint32(a.Base())
	big := new(bigint.Int)
	err := a.each(s, func(d uint32) error {
		big.MulAdd(base, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	value := big.Bytes()
	leaders := a.leaders(s)
	if leaders == 0 {
		return value, nil
	}
	out := make([]byte, leaders+len(value))
	copy(out[leaders:], value)
	return out, nil
}

// DecodeFixed is Decode without allocation: bytes are written into dst
// and the byte count is returned. Only byte alphabets are supported
// (ErrNotASCII otherwise). The big-integer scratch is sized from the
// input length, so a capacity failure cannot occur for any input that
// fits dst. Returns ErrBufferTooSmall when dst cannot hold the decoded
// value plus its restored zero bytes; dst contents are undefined after
// an error. Size dst with DecodedLen.
func DecodeFixed(a Alphabet, dst []byte, s string) (int, error) {
	ba, ok := a.(*byteAlphabet)
	if !ok {
		return 0, ErrNotASCII
	}
	if s == "" {
		return 0, nil
	}

	scratch := alloc.Words.Get(backingLen(ba.Base(), len(s)))
	defer alloc.Words.Put(scratch)

	base := uint32(ba.Base())
	big := bigint.NewFixed(scratch)
	err := ba.each(s, func(d uint32) error {
		return big.MulAdd(base, d)
	})
	if err != nil {
		return 0, err
	}

	n, err := big.FillBytes(dst)
	if err != nil {
		return 0, err
	}

	// Shift the value right to make room for the restored zero bytes;
	// overlapping copy is fine, it has memmove semantics.
	leaders := ba.leaders(s)
	total := leaders + n
	if total > len(dst) {
		return 0, ErrBufferTooSmall
	}
	copy(dst[leaders:total], dst[:n])
	for i := 0; i < leaders; i++ {
		dst[i] = 0
	}
	return total, nil
}
