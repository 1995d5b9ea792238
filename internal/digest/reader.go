package digest

import (
	"encoding/hex"
	"hash"
	"io"
)

// Reader is a proxy that digests data as it is read. It lets callers that
// already consume an io.Reader (HTTP bodies, files) obtain a checksum
// without buffering the stream twice.
type Reader struct {
	reader io.Reader
	hash   hash.Hash
	n      int64
}

// NewReader creates a digesting proxy around r.
func NewReader(r io.Reader, algo Algorithm) *Reader {
	return &Reader{
		reader: r,
		hash:   algo.New(),
	}
}

// Read reads from the underlying reader and feeds the bytes to the digest.
// hash.Hash writes never fail, so only the wrapped reader's error is
// reported.
func (p *Reader) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		p.hash.Write(buf[:n])
		p.n += int64(n)
	}
	return n, err
}

// HexSum returns the digest of everything read so far as lowercase hex.
func (p *Reader) HexSum() string {
	return hex.EncodeToString(p.hash.Sum(nil))
}

// BytesRead returns the number of bytes that passed through the proxy.
func (p *Reader) BytesRead() int64 {
	return p.n
}
