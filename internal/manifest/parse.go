package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/hashbox/hashbox/internal/digest"
	"github.com/hashbox/hashbox/internal/errors"
	"github.com/hashbox/hashbox/internal/utils"
)

// Manifest is the result of parsing one manifest stream.
type Manifest struct {
	Entries []Entry
	// Malformed lists lines that could not be parsed, with their 1-based
	// line numbers.
	Malformed []MalformedLine
}

type MalformedLine struct {
	Number int
	Text   string
	Reason string
}

func (m MalformedLine) String() string {
	return fmt.Sprintf("line %d: %s", m.Number, m.Reason)
}

var (
	bsdLineRegexp = regexp.MustCompile(`^([A-Za-z0-9-]+) \((.+)\) = ([0-9a-fA-F]+)$`)
	hexRegexp     = regexp.MustCompile(`^[0-9a-fA-F]+$`)
)

// inferAlgorithm maps a hex digest length to the algorithm that produces it.
func inferAlgorithm(hexLen int) (digest.Algorithm, bool) {
	for _, algo := range digest.Algorithms() {
		if algo.HexLength() == hexLen {
			return algo, true
		}
	}
	return "", false
}

// Parse reads manifest lines from r. Blank lines and '#' comments are
// skipped; lines that fit neither the GNU nor the BSD format are collected
// in Malformed rather than aborting, so one bad line does not block
// verification of the rest.
func Parse(r io.Reader) (*Manifest, error) {
	m := &Manifest{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		entry, reason := parseLine(line)
		if reason != "" {
			m.Malformed = append(m.Malformed, MalformedLine{
				Number: lineNo,
				Text:   line,
				Reason: reason,
			})
			continue
		}

		m.Entries = append(m.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewManifestError("failed to read manifest", err)
	}

	return m, nil
}

// ParseFile opens and parses a manifest file.
func ParseFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewManifestError(fmt.Sprintf("failed to open manifest %s", path), err)
	}
	defer utils.CloseOrWarn(f)

	return Parse(f)
}

// parseLine parses a single non-blank manifest line. It returns a
// non-empty reason when the line is malformed.
func parseLine(line string) (Entry, string) {
	if matches := bsdLineRegexp.FindStringSubmatch(line); matches != nil {
		return parseBSDLine(matches)
	}
	return parseGNULine(line)
}

func parseBSDLine(matches []string) (Entry, string) {
	algo, err := digest.Parse(matches[1])
	if err != nil {
		return Entry{}, fmt.Sprintf("unknown algorithm tag %q", matches[1])
	}

	hexDigest := strings.ToLower(matches[3])
	if len(hexDigest) != algo.HexLength() {
		return Entry{}, fmt.Sprintf("digest has %d hex chars, %s requires %d",
			len(hexDigest), algo, algo.HexLength())
	}

	return Entry{
		Algorithm: algo,
		Hex:       hexDigest,
		Path:      matches[2],
	}, ""
}

func parseGNULine(line string) (Entry, string) {
	sep := strings.IndexAny(line, " \t")
	if sep < 0 {
		return Entry{}, "missing separator between digest and path"
	}

	hexDigest := line[:sep]
	if !hexRegexp.MatchString(hexDigest) {
		return Entry{}, fmt.Sprintf("digest %q is not hexadecimal", hexDigest)
	}

	algo, ok := inferAlgorithm(len(hexDigest))
	if !ok {
		return Entry{}, fmt.Sprintf("digest length %d matches no supported algorithm", len(hexDigest))
	}

	path := strings.TrimLeft(line[sep:], " \t")
	// A leading '*' marks binary mode in coreutils output; the digest is
	// the same either way.
	path = strings.TrimPrefix(path, "*")
	if path == "" {
		return Entry{}, "missing path after digest"
	}

	return Entry{
		Algorithm: algo,
		Hex:       strings.ToLower(hexDigest),
		Path:      path,
	}, ""
}
