// Package bigint implements the minimal big-unsigned-integer arithmetic
// needed for arbitrary-radix conversion. Values are sequences of 32-bit
// words, most significant first, and support exactly four operations:
// construction from big-endian bytes, division by a small integer with
// remainder, multiplication by a small integer with addition, and export
// back to big-endian bytes. That is everything base-58 (or any other
// radix) needs.
//
// Two variants share those semantics: Int grows as needed, Fixed is
// bounded by a caller-supplied backing slice and reports ErrCapacity
// instead of growing.
package bigint

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

// Common errors for big integer operations
var (
	ErrCapacity       = errors.New("backing array too small")
	ErrBufferTooSmall = errors.New("output buffer too small")
)

// wordBytes is the byte width of one word.
const wordBytes = 4

// Int is a growable non-negative big integer. The zero value is zero.
type Int struct {
	words []uint32 // big-endian: words[0] is most significant
}

// New builds an Int from big-endian bytes. Leading zero bytes are
// absorbed into the value (they do not round-trip; callers that care
// about them count them separately).
func New(b []byte) *Int {
	z := &Int{words: make([]uint32, (len(b)+wordBytes-1)/wordBytes)}
	z.setBytes(b)
	return z
}

func (z *Int) setBytes(b []byte) {
	// Fill from the least significant end so a partial leading word is
	// naturally zero-padded.
	i := len(b)
	for w := len(z.words) - 1; w >= 0 && i > 0; w-- {
		if i >= wordBytes {
			z.words[w] = binary.BigEndian.Uint32(b[i-wordBytes : i])
			i -= wordBytes
		} else {
			var word uint32
			for _, c := range b[:i] {
				word = word<<8 | uint32(c)
			}
			z.words[w] = word
			i = 0
		}
	}
}

// DivMod divides z by d in place and returns the remainder. A single
// sweep from the most significant word down, carrying the running
// remainder widened to 64 bits.
func (z *Int) DivMod(d uint32) uint32 {
	var carry uint64
	for i, w := range z.words {
		carry = carry<<32 | uint64(w)
		z.words[i] = uint32(carry / uint64(d))
		carry %= uint64(d)
	}
	return uint32(carry)
}

// MulAdd sets z = z*m + a in a single sweep from the least significant
// word up. A carry left over past the most significant word grows the
// integer by one word.
func (z *Int) MulAdd(m, a uint32) {
	carry := uint64(a)
	for i := len(z.words) - 1; i >= 0; i-- {
		carry += uint64(z.words[i]) * uint64(m)
		z.words[i] = uint32(carry)
		carry >>= 32
	}
	if carry > 0 {
		z.words = append(z.words, 0)
		copy(z.words[1:], z.words)
		z.words[0] = uint32(carry)
	}
}

// IsZero reports whether z is zero.
func (z *Int) IsZero() bool {
	for _, w := range z.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Bytes returns the minimal big-endian representation of z. Zero yields
// an empty (nil) slice.
func (z *Int) Bytes() []byte {
	skip, total := leadingZeroBytes(z.words)
	if total == skip {
		return nil
	}
	out := make([]byte, total-skip)
	emitBytes(out, z.words, skip)
	return out
}

// leadingZeroBytes returns the number of leading zero bytes in the
// big-endian rendering of words, and the total byte length.
func leadingZeroBytes(words []uint32) (skip, total int) {
	total = len(words) * wordBytes
	for _, w := range words {
		if w != 0 {
			skip += bits.LeadingZeros32(w) / 8
			return skip, total
		}
		skip += wordBytes
	}
	return skip, total
}

// emitBytes writes the big-endian bytes of words, minus the first skip
// bytes, into out. out must be exactly len(words)*4-skip long.
func emitBytes(out []byte, words []uint32, skip int) {
	first := skip / wordBytes
	offset := skip % wordBytes

	var buf [wordBytes]byte
	binary.BigEndian.PutUint32(buf[:], words[first])
	n := copy(out, buf[offset:])

	for _, w := range words[first+1:] {
		binary.BigEndian.PutUint32(out[n:], w)
		n += wordBytes
	}
}
