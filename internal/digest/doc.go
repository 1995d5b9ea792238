// Package digest provides the algorithm registry and hex digest helpers.
//
// This package is the single entry point for computing checksums in hashbox.
// It maps algorithm names to hash constructors and renders digests in the
// canonical lowercase-hex form used by manifests, the index store and the
// HTTP API.
//
// # Supported Algorithms
//
//   - md5: the built-in RFC 1321 implementation (internal/md5)
//   - sha1, sha256, sha512: the standard library crypto implementations
//
// # Example Usage
//
// One-shot digest of a string:
//
//	algo, _ := digest.Parse("sha-256")
//	fmt.Println(digest.HexSumString(algo, "hello world"))
//
// Streaming digest of a file:
//
//	f, _ := os.Open(path)
//	defer f.Close()
//
//	hex, size, _ := digest.SumReader(digest.MD5, f)
//	fmt.Printf("%s  %s (%d bytes)\n", hex, path, size)
//
// Algorithm names are parsed case-insensitively and dashed spellings such
// as "SHA-256" are accepted. Digests are always 2*Size() lowercase hex
// characters.
package digest
