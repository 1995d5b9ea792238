package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashbox/hashbox/internal/digest"
)

func TestParse_GNULines(t *testing.T) {
	input := `b1946ac92492d2347c6235b4d2611184  hello.txt
5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03  hello.txt
`

	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(m.Malformed) != 0 {
		t.Fatalf("Expected no malformed lines, got %v", m.Malformed)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(m.Entries))
	}

	if m.Entries[0].Algorithm != digest.MD5 {
		t.Errorf("Expected md5 inferred from 32 hex chars, got %s", m.Entries[0].Algorithm)
	}
	if m.Entries[1].Algorithm != digest.SHA256 {
		t.Errorf("Expected sha256 inferred from 64 hex chars, got %s", m.Entries[1].Algorithm)
	}
	if m.Entries[0].Path != "hello.txt" {
		t.Errorf("Expected path hello.txt, got %q", m.Entries[0].Path)
	}
}

func TestParse_AlgorithmInference(t *testing.T) {
	tests := []struct {
		hexLen   int
		expected digest.Algorithm
	}{
		{32, digest.MD5},
		{40, digest.SHA1},
		{64, digest.SHA256},
		{128, digest.SHA512},
	}

	for _, tt := range tests {
		line := strings.Repeat("a", tt.hexLen) + "  file.bin"
		m, err := Parse(strings.NewReader(line))
		if err != nil {
			t.Fatalf("Parse returned error: %v", err)
		}
		if len(m.Entries) != 1 {
			t.Fatalf("hex length %d: expected 1 entry, got %d entries (%v)", tt.hexLen, len(m.Entries), m.Malformed)
		}
		if m.Entries[0].Algorithm != tt.expected {
			t.Errorf("hex length %d: inferred %s, want %s", tt.hexLen, m.Entries[0].Algorithm, tt.expected)
		}
	}
}

func TestParse_BSDLines(t *testing.T) {
	input := `MD5 (hello.txt) = b1946ac92492d2347c6235b4d2611184
SHA256 (dir with spaces/data.bin) = 5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03
`

	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(m.Malformed) != 0 {
		t.Fatalf("Expected no malformed lines, got %v", m.Malformed)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(m.Entries))
	}

	if m.Entries[0].Algorithm != digest.MD5 || m.Entries[0].Path != "hello.txt" {
		t.Errorf("Unexpected first entry: %+v", m.Entries[0])
	}
	if m.Entries[1].Algorithm != digest.SHA256 || m.Entries[1].Path != "dir with spaces/data.bin" {
		t.Errorf("Unexpected second entry: %+v", m.Entries[1])
	}
}

func TestParse_SkipsBlankAndComments(t *testing.T) {
	input := `# release checksums

b1946ac92492d2347c6235b4d2611184  hello.txt

  # indented comment
`

	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(m.Entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(m.Entries))
	}
	if len(m.Malformed) != 0 {
		t.Errorf("Expected no malformed lines, got %v", m.Malformed)
	}
}

func TestParse_MalformedLines(t *testing.T) {
	input := `b1946ac92492d2347c6235b4d2611184  hello.txt
not-a-digest  file.txt
abcdef  short.txt
MD4 (old.txt) = b1946ac92492d2347c6235b4d2611184
SHA256 (short.txt) = abcdef
justoneword
`

	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(m.Entries) != 1 {
		t.Errorf("Expected 1 valid entry, got %d", len(m.Entries))
	}
	if len(m.Malformed) != 5 {
		t.Fatalf("Expected 5 malformed lines, got %d: %v", len(m.Malformed), m.Malformed)
	}

	expectedLines := []int{2, 3, 4, 5, 6}
	for i, bad := range m.Malformed {
		if bad.Number != expectedLines[i] {
			t.Errorf("Malformed[%d].Number = %d, want %d", i, bad.Number, expectedLines[i])
		}
		if bad.Reason == "" {
			t.Errorf("Malformed[%d] has no reason", i)
		}
	}
}

func TestParse_NormalizesCaseAndBinaryMarker(t *testing.T) {
	input := "B1946AC92492D2347C6235B4D2611184 *hello.bin\n"

	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(m.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d (%v)", len(m.Entries), m.Malformed)
	}
	if m.Entries[0].Hex != "b1946ac92492d2347c6235b4d2611184" {
		t.Errorf("Expected lowercased hex, got %q", m.Entries[0].Hex)
	}
	if m.Entries[0].Path != "hello.bin" {
		t.Errorf("Expected binary marker stripped, got %q", m.Entries[0].Path)
	}
}

func TestParse_CRLF(t *testing.T) {
	input := "b1946ac92492d2347c6235b4d2611184  hello.txt\r\n"

	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(m.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d (%v)", len(m.Entries), m.Malformed)
	}
	if m.Entries[0].Path != "hello.txt" {
		t.Errorf("Expected path without trailing CR, got %q", m.Entries[0].Path)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sums.md5")

	content := "b1946ac92492d2347c6235b4d2611184  hello.txt\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	m, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if len(m.Entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(m.Entries))
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.md5"))
	if err == nil {
		t.Error("Expected error for missing manifest")
	}
}
