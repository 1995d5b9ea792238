package md5

import (
	"encoding/binary"
	"math/bits"
)

// sines is table T from RFC 1321: T[i] = floor(2^32 * abs(sin(i+1))),
// one constant per operation.
var sines = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// shifts holds the left-rotation amount of each operation, four values
// cycling per round.
var shifts = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// wordIndex is the message-word permutation: which of the sixteen block
// words each operation consumes. Round 1 walks the block in order;
// rounds 2-4 follow the RFC's (5i+1), (3i+5) and 7i mod 16 schedules.
var wordIndex = [64]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	1, 6, 11, 0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12,
	5, 8, 11, 14, 1, 4, 7, 10, 13, 0, 3, 6, 9, 12, 15, 2,
	0, 7, 14, 5, 12, 3, 10, 1, 8, 15, 6, 13, 4, 11, 2, 9,
}

// block folds one or more whole 64-byte blocks into the accumulators.
// All arithmetic is uint32 with natural mod-2^32 wraparound; rotation
// is a true circular shift.
func block(dig *digest, p []byte) {
	a, b, c, d := dig.s[0], dig.s[1], dig.s[2], dig.s[3]
	var m [16]uint32

	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			m[i] = binary.LittleEndian.Uint32(p[i*4 : i*4+4])
		}

		aa, bb, cc, dd := a, b, c, d

		// Round 1: F(x,y,z) = (x AND y) OR (NOT x AND z)
		for i := 0; i < 16; i++ {
			f := b&c | ^b&d
			a += f + m[wordIndex[i]] + sines[i]
			a = b + bits.RotateLeft32(a, shifts[i])
			a, b, c, d = d, a, b, c
		}

		// Round 2: G(x,y,z) = (x AND z) OR (y AND NOT z)
		for i := 16; i < 32; i++ {
			f := b&d | c&^d
			a += f + m[wordIndex[i]] + sines[i]
			a = b + bits.RotateLeft32(a, shifts[i])
			a, b, c, d = d, a, b, c
		}

		// Round 3: H(x,y,z) = x XOR y XOR z
		for i := 32; i < 48; i++ {
			f := b ^ c ^ d
			a += f + m[wordIndex[i]] + sines[i]
			a = b + bits.RotateLeft32(a, shifts[i])
			a, b, c, d = d, a, b, c
		}

		// Round 4: I(x,y,z) = y XOR (x OR NOT z)
		for i := 48; i < 64; i++ {
			f := c ^ (b | ^d)
			a += f + m[wordIndex[i]] + sines[i]
			a = b + bits.RotateLeft32(a, shifts[i])
			a, b, c, d = d, a, b, c
		}

		// Fold this block into the carried state.
		a += aa
		b += bb
		c += cc
		d += dd

		p = p[BlockSize:]
	}

	dig.s[0], dig.s[1], dig.s[2], dig.s[3] = a, b, c, d
}
