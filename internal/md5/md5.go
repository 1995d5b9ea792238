// Package md5 implements the MD5 message-digest algorithm as defined in
// RFC 1321.
//
// MD5 is cryptographically broken and must not be used where collision
// resistance matters. hashbox ships its own implementation because the
// digest itself is the product here: manifests, fingerprints and change
// detection in ecosystems that still speak MD5, verified bit-for-bit
// against the RFC test suite.
package md5

import (
	"encoding/binary"
	"hash"
)

// Size is the size of an MD5 digest in bytes.
const Size = 16

// BlockSize is the block size of MD5 in bytes.
const BlockSize = 64

// Accumulator seed values from RFC 1321 section 3.3.
const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// digest is the running state of a checksum: the four 32-bit
// accumulators, a partial-block buffer and the total message length in
// bytes. It is created per computation and never handed out directly;
// New returns it behind hash.Hash.
type digest struct {
	s   [4]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a new hash.Hash computing the MD5 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

// Sum returns the MD5 checksum of data.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

func (d *digest) Reset() {
	d.s[0] = init0
	d.s[1] = init1
	d.s[2] = init2
	d.s[3] = init3
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

// Write absorbs more input. It always returns len(p), nil: MD5 is a
// total function over byte sequences and has no failure path.
func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockSize {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	if len(p) >= BlockSize {
		c := len(p) &^ (BlockSize - 1)
		block(d, p[:c])
		p = p[c:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

// Sum appends the current checksum to in. It finalizes a copy of the
// state, so the caller may keep writing and summing.
func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

// checkSum pads the message per RFC 1321 sections 3.1 and 3.2: a single
// 0x80 byte, zeros until the length is congruent to 56 mod 64, then the
// original length in bits as a little-endian 64-bit value. The padded
// stream is always a whole number of 64-byte blocks. The digest is the
// four accumulators serialized little-endian.
func (d *digest) checkSum() [Size]byte {
	// 1 marker byte :: 0-63 zero bytes :: 8 length bytes.
	tmp := [1 + 63 + 8]byte{0x80}
	pad := (55 - d.len) % 64
	binary.LittleEndian.PutUint64(tmp[1+pad:], d.len<<3)
	d.Write(tmp[:1+pad+8])

	if d.nx != 0 {
		panic("md5: padding left a partial block")
	}

	var out [Size]byte
	binary.LittleEndian.PutUint32(out[0:], d.s[0])
	binary.LittleEndian.PutUint32(out[4:], d.s[1])
	binary.LittleEndian.PutUint32(out[8:], d.s[2])
	binary.LittleEndian.PutUint32(out[12:], d.s[3])
	return out
}
