package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/hashbox/hashbox/internal/errors"
	"github.com/hashbox/hashbox/internal/md5"
)

// Algorithm identifies a supported digest algorithm by its canonical
// lowercase name.
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// Algorithms returns all supported algorithms in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA512}
}

// Parse resolves a user-supplied algorithm name. Names are matched
// case-insensitively and dashed spellings ("SHA-256") are accepted.
func Parse(name string) (Algorithm, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	switch normalized {
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "sha512":
		return SHA512, nil
	default:
		return "", errors.NewInvalidInputError(fmt.Sprintf("unknown algorithm %q", name), nil)
	}
}

// String returns the canonical lowercase name.
func (a Algorithm) String() string {
	return string(a)
}

// New returns a fresh hash state for the algorithm. It panics on an
// algorithm that did not come from Parse or the package constants.
func (a Algorithm) New() hash.Hash {
	switch a {
	case MD5:
		return md5.New()
	case SHA1:
		return sha1.New()
	case SHA256:
		return sha256.New()
	case SHA512:
		return sha512.New()
	default:
		panic("digest: unsupported algorithm " + string(a))
	}
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case MD5:
		return md5.Size
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	case SHA512:
		return sha512.Size
	default:
		panic("digest: unsupported algorithm " + string(a))
	}
}

// HexLength returns the length of the rendered hex digest (two characters
// per byte).
func (a Algorithm) HexLength() int {
	return 2 * a.Size()
}

// HexSum computes the digest of data and renders it as lowercase hex.
func HexSum(algo Algorithm, data []byte) string {
	h := algo.New()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// HexSumString computes the digest of the UTF-8 encoding of text. Go
// strings already hold that encoding, so the bytes are hashed as-is.
func HexSumString(algo Algorithm, text string) string {
	return HexSum(algo, []byte(text))
}

// SumReader streams r through the algorithm and returns the lowercase hex
// digest along with the number of bytes consumed.
func SumReader(algo Algorithm, r io.Reader) (string, int64, error) {
	h := algo.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, err
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}
