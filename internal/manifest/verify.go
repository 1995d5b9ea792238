package manifest

import (
	"os"

	"github.com/hashbox/hashbox/internal/digest"
	"github.com/hashbox/hashbox/internal/utils"
)

// Status classifies the outcome of verifying one manifest entry.
type Status string

const (
	// StatusOK means the file digest matches the manifest.
	StatusOK Status = "ok"
	// StatusMismatch means the file was read but its digest differs.
	StatusMismatch Status = "mismatch"
	// StatusMissing means the listed file does not exist.
	StatusMissing Status = "missing"
	// StatusUnreadable means the file exists but could not be read.
	StatusUnreadable Status = "unreadable"
)

// Result is the verification outcome for one entry.
type Result struct {
	Entry  Entry
	Status Status
	// Actual holds the computed digest when it differs from the manifest.
	Actual string
	// Err holds the read error for unreadable files.
	Err error
}

// Summary aggregates verification results per status.
type Summary struct {
	OK         int
	Mismatched int
	Missing    int
	Unreadable int
}

// Failed reports whether any entry did not verify clean.
func (s Summary) Failed() bool {
	return s.Mismatched > 0 || s.Missing > 0 || s.Unreadable > 0
}

// Verify digests every listed file and compares it with its manifest
// entry. Relative entry paths are resolved against baseDir when it is
// non-empty, otherwise against the working directory the way the checksum
// tools do it.
func Verify(m *Manifest, baseDir string) []Result {
	results := make([]Result, 0, len(m.Entries))

	for _, entry := range m.Entries {
		path := entry.Path
		if baseDir != "" {
			path = utils.GetAbsolutePath(path, baseDir)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			results = append(results, Result{Entry: entry, Status: StatusMissing})
			continue
		}

		actual, _, err := digest.SumFile(entry.Algorithm, path)
		if err != nil {
			results = append(results, Result{Entry: entry, Status: StatusUnreadable, Err: err})
			continue
		}

		if actual != entry.Hex {
			results = append(results, Result{Entry: entry, Status: StatusMismatch, Actual: actual})
			continue
		}

		results = append(results, Result{Entry: entry, Status: StatusOK})
	}

	return results
}

// Summarize counts results per status.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			s.OK++
		case StatusMismatch:
			s.Mismatched++
		case StatusMissing:
			s.Missing++
		case StatusUnreadable:
			s.Unreadable++
		}
	}
	return s
}
