package digest

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func TestNewReader(t *testing.T) {
	reader := strings.NewReader("test data")
	proxy := NewReader(reader, MD5)

	if proxy == nil {
		t.Fatal("Expected proxy to be non-nil")
	}

	if proxy.reader != reader {
		t.Error("Expected reader to be set correctly")
	}

	if proxy.hash == nil {
		t.Error("Expected hash to be initialized")
	}
}

func TestReader_Read(t *testing.T) {
	reader := strings.NewReader("hello world")
	proxy := NewReader(reader, MD5)

	buf := make([]byte, 5)
	n, err := proxy.Read(buf)

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if n != 5 {
		t.Errorf("Expected to read 5 bytes, got %d", n)
	}

	if string(buf) != "hello" {
		t.Errorf("Expected 'hello', got '%s'", string(buf))
	}

	if proxy.BytesRead() != 5 {
		t.Errorf("Expected BytesRead 5, got %d", proxy.BytesRead())
	}
}

func TestReader_ReadAll(t *testing.T) {
	testData := "hello world"
	proxy := NewReader(strings.NewReader(testData), MD5)

	allData, err := io.ReadAll(proxy)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if string(allData) != testData {
		t.Errorf("Expected '%s', got '%s'", testData, string(allData))
	}

	if proxy.BytesRead() != int64(len(testData)) {
		t.Errorf("Expected BytesRead %d, got %d", len(testData), proxy.BytesRead())
	}
}

func TestReader_ReadError(t *testing.T) {
	expectedErr := errors.New("read error")
	proxy := NewReader(&errorReader{err: expectedErr}, MD5)

	buf := make([]byte, 10)
	_, err := proxy.Read(buf)

	if err != expectedErr {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

func TestReader_HexSum(t *testing.T) {
	testData := "hello world"
	proxy := NewReader(strings.NewReader(testData), MD5)

	if _, err := io.ReadAll(proxy); err != nil {
		t.Fatalf("Failed to read data: %v", err)
	}

	expected := HexSum(MD5, []byte(testData))
	if got := proxy.HexSum(); got != expected {
		t.Errorf("Expected checksum %s, got %s", expected, got)
	}
}

func TestReader_HexSumEmpty(t *testing.T) {
	proxy := NewReader(strings.NewReader(""), MD5)

	if _, err := io.ReadAll(proxy); err != nil {
		t.Fatalf("Failed to read data: %v", err)
	}

	expected := "d41d8cd98f00b204e9800998ecf8427e"
	if got := proxy.HexSum(); got != expected {
		t.Errorf("Expected checksum %s, got %s", expected, got)
	}
}

func TestReader_EveryAlgorithm(t *testing.T) {
	testData := "The quick brown fox jumps over the lazy dog"

	for _, algo := range Algorithms() {
		proxy := NewReader(strings.NewReader(testData), algo)
		if _, err := io.ReadAll(proxy); err != nil {
			t.Fatalf("%s: failed to read data: %v", algo, err)
		}

		expected := HexSum(algo, []byte(testData))
		if got := proxy.HexSum(); got != expected {
			t.Errorf("%s: expected checksum %s, got %s", algo, expected, got)
		}
	}
}
