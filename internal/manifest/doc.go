// Package manifest reads, writes and verifies checksum manifests.
//
// A manifest is a plain-text file listing one digest per line, in the
// formats emitted by the common checksum tools. Both directions are
// supported: rendering entries for the "sum" command and parsing existing
// manifests for the "verify" command.
//
// # Line Formats
//
//   - GNU coreutils: "d41d8cd98f00b204e9800998ecf8427e  file.txt"
//   - BSD tag:       "MD5 (file.txt) = d41d8cd98f00b204e9800998ecf8427e"
//   - Template:      caller-supplied line template with {digest}, {path},
//     {algorithm}, {ALGORITHM} and {size} placeholders
//
// GNU lines do not name their algorithm; it is inferred from the digest
// length (32 hex chars for md5, 40 for sha1, 64 for sha256, 128 for
// sha512). Blank lines and lines starting with '#' are skipped. Malformed
// lines are collected with their line numbers instead of aborting the
// whole parse, matching the tolerant behavior of "md5sum -c".
//
// # Verification
//
// Verify streams every listed file and classifies each entry:
//
//	m, _ := manifest.ParseFile("release.md5")
//	for _, r := range manifest.Verify(m, "") {
//	    fmt.Printf("%s: %s\n", r.Entry.Path, r.Status)
//	}
package manifest
