package parallelhash

import "github.com/codahale/parallelhash/internal/sp800185"

// LeftEncode returns NIST SP 800-185's left_encode(v): the big-endian bytes of v with leading zeros removed (at least
// one byte), preceded by their count.
func LeftEncode(v uint64) []byte {
	return sp800185.AppendLeftEncode(make([]byte, 0, sp800185.MaxSize), v)
}

// RightEncode returns NIST SP 800-185's right_encode(v): the big-endian bytes of v with leading zeros removed, followed
// by their count. RightEncode(0) is the single byte 0x00.
func RightEncode(v uint64) []byte {
	return sp800185.AppendRightEncode(make([]byte, 0, sp800185.MaxSize), v)
}
