// Package basex encodes and decodes byte sequences in an arbitrary
// radix, where the radix is the length of a caller-supplied symbol
// alphabet: base58, base62, or anything custom, including non-ASCII
// symbols. The radix is generally not a power of two, so conversion
// runs through a small big-integer engine rather than bit packing: the
// input is treated as one base-256 integer and re-expressed digit by
// digit in base-N.
//
// Leading zero bytes carry no numeric value, so they are preserved
// explicitly: each one becomes the alphabet's first symbol on encode
// and is restored on decode.
//
//	a := basex.Base58
//	s := basex.Encode(a, []byte{0x00, 0xff})     // "15Q"
//	b, err := basex.Decode(a, s)                 // [0x00 0xff]
//
// Encode and Decode allocate their results. EncodeFixed and
// DecodeFixed write into caller-supplied buffers instead, sized via
// EncodedLen and DecodedLen, and draw their arithmetic scratch from an
// internal pool, keeping allocation out of the conversion itself.
//
// All codec state is per call; alphabets are immutable after
// construction. Every function is safe for concurrent use.
package basex
