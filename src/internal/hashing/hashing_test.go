package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
)

const emptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func TestChecksumReaderProxy_ReadAll(t *testing.T) {
	testData := "hello world"
	proxy := NewMD5ReaderProxy(strings.NewReader(testData))

	allData, err := io.ReadAll(proxy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(allData) != testData {
		t.Errorf("Expected '%s', got '%s'", testData, string(allData))
	}
	if proxy.BytesRead() != int64(len(testData)) {
		t.Errorf("Expected %d bytes read, got %d", len(testData), proxy.BytesRead())
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Fatalf("Unexpected error getting checksum: %v", err)
	}
	sum := md5.Sum([]byte(testData))
	if expected := hex.EncodeToString(sum[:]); checksum != expected {
		t.Errorf("Expected checksum %s, got %s", expected, checksum)
	}
}

func TestChecksumReaderProxy_Empty(t *testing.T) {
	proxy := NewMD5ReaderProxy(strings.NewReader(""))
	if _, err := io.ReadAll(proxy); err != nil {
		t.Fatalf("Failed to read data: %v", err)
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Errorf("Unexpected error getting checksum: %v", err)
	}
	if checksum != emptyMD5 {
		t.Errorf("Expected checksum %s, got %s", emptyMD5, checksum)
	}
}

func TestChecksumReaderProxy_ReadError(t *testing.T) {
	expectedErr := errors.New("read error")
	proxy := NewMD5ReaderProxy(&errorReader{err: expectedErr})

	_, err := proxy.Read(make([]byte, 10))
	if err != expectedErr {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

func TestChecksumStringSet(t *testing.T) {
	a := NewChecksumStringSet()
	a.Put("list-a@1")
	a.Put("list-b@2")
	a.Put("list-a@1")

	b := NewChecksumStringSet()
	b.Put("list-b@2")
	b.Put("list-a@1")

	if a.Size() != 2 {
		t.Errorf("Expected size 2 after duplicate, got %d", a.Size())
	}

	sumA, _ := a.GetChecksum()
	sumB, _ := b.GetChecksum()
	if sumA != sumB {
		t.Errorf("Expected insertion order not to matter, got %s and %s", sumA, sumB)
	}

	b.Put("list-c@1")
	if sumC, _ := b.GetChecksum(); sumC == sumA {
		t.Error("Expected checksum to change when the set changes")
	}

	if sum, _ := NewChecksumStringSet().GetChecksum(); sum != emptyMD5 {
		t.Errorf("Expected checksum %s for empty set, got %s", emptyMD5, sum)
	}
}
