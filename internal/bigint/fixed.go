package bigint

// Fixed is a fixed-capacity big integer backed by a caller-supplied
// word slice. The backing length is the capacity bound: operations
// that would need another word return ErrCapacity instead of growing.
//
// The value is kept right-aligned in the backing (leading words zero),
// so DivMod and MulAdd sweep the whole slice without ever shifting
// words around.
type Fixed struct {
	words []uint32 // big-endian: words[0] is most significant
}

// NewFixed wraps backing as a zero-valued Fixed. The backing slice is
// owned by the Fixed until the caller is done with it; it is cleared
// here, so recycled scratch is safe to pass in.
func NewFixed(backing []uint32) *Fixed {
	for i := range backing {
		backing[i] = 0
	}
	return &Fixed{words: backing}
}

// SetBytes loads big-endian bytes into z, replacing its value. Returns
// ErrCapacity if the bytes need more words than the backing holds.
func (z *Fixed) SetBytes(b []byte) error {
	if (len(b)+wordBytes-1)/wordBytes > len(z.words) {
		return ErrCapacity
	}
	for i := range z.words {
		z.words[i] = 0
	}
	(&Int{words: z.words}).setBytes(b)
	return nil
}

// DivMod divides z by d in place and returns the remainder.
func (z *Fixed) DivMod(d uint32) uint32 {
	return (&Int{words: z.words}).DivMod(d)
}

// MulAdd sets z = z*m + a. Returns ErrCapacity if the final carry has
// nowhere to go; z is not usable for arithmetic after that.
func (z *Fixed) MulAdd(m, a uint32) error {
	carry := uint64(a)
	for i := len(z.words) - 1; i >= 0; i-- {
		carry += uint64(z.words[i]) * uint64(m)
		z.words[i] = uint32(carry)
		carry >>= 32
	}
	if carry > 0 {
		return ErrCapacity
	}
	return nil
}

// IsZero reports whether z is zero.
func (z *Fixed) IsZero() bool {
	return (&Int{words: z.words}).IsZero()
}

// FillBytes writes the minimal big-endian representation of z into the
// front of dst and returns the byte count. Zero writes nothing and
// returns 0. Returns ErrBufferTooSmall, writing nothing, if dst is too
// short for the minimal representation.
func (z *Fixed) FillBytes(dst []byte) (int, error) {
	skip, total := leadingZeroBytes(z.words)
	n := total - skip
	if n == 0 {
		return 0, nil
	}
	if n > len(dst) {
		return 0, ErrBufferTooSmall
	}
	emitBytes(dst[:n], z.words, skip)
	return n, nil
}
