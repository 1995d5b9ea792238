package manifest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashbox/hashbox/internal/digest"
)

func TestEntry_FormatGNU(t *testing.T) {
	entry := Entry{
		Algorithm: digest.MD5,
		Hex:       "b1946ac92492d2347c6235b4d2611184",
		Path:      "hello.txt",
	}

	expected := "b1946ac92492d2347c6235b4d2611184  hello.txt"
	if got := entry.FormatGNU(); got != expected {
		t.Errorf("FormatGNU() = %q, want %q", got, expected)
	}
}

func TestEntry_FormatBSD(t *testing.T) {
	tests := []struct {
		entry    Entry
		expected string
	}{
		{
			Entry{Algorithm: digest.MD5, Hex: "b1946ac92492d2347c6235b4d2611184", Path: "hello.txt"},
			"MD5 (hello.txt) = b1946ac92492d2347c6235b4d2611184",
		},
		{
			Entry{Algorithm: digest.SHA256, Hex: "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03", Path: "hello.txt"},
			"SHA256 (hello.txt) = 5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03",
		},
	}

	for _, tt := range tests {
		if got := tt.entry.FormatBSD(); got != tt.expected {
			t.Errorf("FormatBSD() = %q, want %q", got, tt.expected)
		}
	}
}

func TestTemplate_FormatLine(t *testing.T) {
	tmpl, err := NewTemplate("{ALGORITHM}:{digest} {path} ({size} bytes, {algorithm})")
	if err != nil {
		t.Fatalf("NewTemplate returned error: %v", err)
	}

	entry := Entry{
		Algorithm: digest.SHA1,
		Hex:       "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
		Path:      "docs/readme.md",
		Size:      5,
	}

	expected := "SHA1:aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d docs/readme.md (5 bytes, sha1)"
	if got := tmpl.FormatLine(entry); got != expected {
		t.Errorf("FormatLine() = %q, want %q", got, expected)
	}
}

func TestNewTemplate_Unclosed(t *testing.T) {
	_, err := NewTemplate("{digest: {path")
	if err == nil {
		t.Error("Expected error for unclosed placeholder")
	}
}

func TestNewFormatter(t *testing.T) {
	entry := Entry{
		Algorithm: digest.MD5,
		Hex:       "b1946ac92492d2347c6235b4d2611184",
		Path:      "hello.txt",
	}

	tests := []struct {
		format   string
		template string
		expected string
	}{
		{"gnu", "", "b1946ac92492d2347c6235b4d2611184  hello.txt"},
		{"", "", "b1946ac92492d2347c6235b4d2611184  hello.txt"},
		{"bsd", "", "MD5 (hello.txt) = b1946ac92492d2347c6235b4d2611184"},
		{"template", "{digest}", "b1946ac92492d2347c6235b4d2611184"},
	}

	for _, tt := range tests {
		f, err := NewFormatter(tt.format, tt.template)
		if err != nil {
			t.Fatalf("NewFormatter(%q) returned error: %v", tt.format, err)
		}
		if got := f.FormatLine(entry); got != tt.expected {
			t.Errorf("NewFormatter(%q).FormatLine() = %q, want %q", tt.format, got, tt.expected)
		}
	}
}

func TestNewFormatter_Unknown(t *testing.T) {
	_, err := NewFormatter("yaml", "")
	if err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestWrite(t *testing.T) {
	entries := []Entry{
		{Algorithm: digest.MD5, Hex: "9f9f90dbe3e5ee1218c86b8839db1995", Path: "alpha.txt"},
		{Algorithm: digest.MD5, Hex: "f0cf2a92516045024a0c99147b28f05b", Path: "beta.txt"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, entries, gnuFormatter{}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "9f9f90dbe3e5ee1218c86b8839db1995  alpha.txt" {
		t.Errorf("Unexpected first line: %q", lines[0])
	}
	if lines[1] != "f0cf2a92516045024a0c99147b28f05b  beta.txt" {
		t.Errorf("Unexpected second line: %q", lines[1])
	}
}
