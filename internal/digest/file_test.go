package digest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSumFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")

	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// coreutils: md5sum / sha256sum of "hello\n"
	tests := []struct {
		algo Algorithm
		want string
	}{
		{MD5, "b1946ac92492d2347c6235b4d2611184"},
		{SHA256, "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03"},
	}

	for _, tt := range tests {
		hexSum, size, err := SumFile(tt.algo, path)
		if err != nil {
			t.Fatalf("SumFile(%s) returned error: %v", tt.algo, err)
		}
		if size != 6 {
			t.Errorf("SumFile(%s) size = %d, want 6", tt.algo, size)
		}
		if hexSum != tt.want {
			t.Errorf("SumFile(%s) = %s, want %s", tt.algo, hexSum, tt.want)
		}
	}
}

func TestSumFile_Missing(t *testing.T) {
	_, _, err := SumFile(MD5, filepath.Join(t.TempDir(), "absent.bin"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
