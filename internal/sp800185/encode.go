// Package sp800185 implements the integer encodings of [NIST SP 800-185] used by ParallelHash.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
package sp800185

import (
	"math/bits"
)

// MaxSize is the length, in bytes, of the largest encoded integer.
const MaxSize = 9

// AppendLeftEncode appends left_encode(value) to b: the big-endian bytes of value with leading zeros removed (at least
// one byte), preceded by their count.
func AppendLeftEncode(b []byte, value uint64) []byte {
	n := size(value | 1)
	b = append(b, byte(n))
	return appendBigEndian(b, value, n)
}

// AppendRightEncode appends right_encode(value) to b: the big-endian bytes of value with leading zeros removed,
// followed by their count. Zero has no data bytes and encodes as the single byte 0x00.
func AppendRightEncode(b []byte, value uint64) []byte {
	n := size(value)
	b = appendBigEndian(b, value, n)
	return append(b, byte(n))
}

// size returns the number of significant bytes in value.
func size(value uint64) int {
	return 8 - bits.LeadingZeros64(value)/8
}

func appendBigEndian(b []byte, value uint64, n int) []byte {
	value <<= (8 - n) * 8
	for range n {
		b = append(b, byte(value>>56))
		value <<= 8
	}
	return b
}
