package source

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type mockChecksumProvider struct {
	checksum    string
	shouldError bool
}

func (m *mockChecksumProvider) GetChecksum() (string, error) {
	if m.shouldError {
		return "", fmt.Errorf("mock checksum error")
	}
	return m.checksum, nil
}

func TestIsFileChanged(t *testing.T) {
	tests := []struct {
		name        string
		createFile  bool
		stored      *string
		provider    *mockChecksumProvider
		wantChanged bool
		wantErr     bool
	}{
		{
			name:        "file does not exist",
			provider:    &mockChecksumProvider{checksum: "abc123"},
			wantChanged: true,
		},
		{
			name:       "checksum error",
			createFile: true,
			provider:   &mockChecksumProvider{shouldError: true},
			wantErr:    true,
		},
		{
			name:        "no checksum file",
			createFile:  true,
			provider:    &mockChecksumProvider{checksum: "abc123"},
			wantChanged: true,
		},
		{
			name:        "checksum matches",
			createFile:  true,
			stored:      ptr("abc123\n"),
			provider:    &mockChecksumProvider{checksum: "abc123"},
			wantChanged: false,
		},
		{
			name:        "checksum differs",
			createFile:  true,
			stored:      ptr("old_checksum"),
			provider:    &mockChecksumProvider{checksum: "new_checksum"},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(t.TempDir(), "dataset.zip")
			if tt.createFile {
				if err := os.WriteFile(testFile, []byte("content"), 0644); err != nil {
					t.Fatalf("Failed to create test file: %v", err)
				}
			}
			if tt.stored != nil {
				if err := os.WriteFile(testFile+".md5", []byte(*tt.stored), 0644); err != nil {
					t.Fatalf("Failed to create checksum file: %v", err)
				}
			}

			changed, err := IsFileChanged(tt.provider, testFile)
			if (err != nil) != tt.wantErr {
				t.Fatalf("IsFileChanged() error = %v, wantErr %v", err, tt.wantErr)
			}
			if changed != tt.wantChanged {
				t.Errorf("IsFileChanged() = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestWriteChecksum(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "dataset.zip")

	if err := WriteChecksum(&mockChecksumProvider{checksum: "abc123def456"}, testFile); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	content, err := os.ReadFile(testFile + ".md5")
	if err != nil {
		t.Fatalf("Failed to read checksum file: %v", err)
	}
	if string(content) != "abc123def456" {
		t.Errorf("Expected checksum content 'abc123def456', got '%s'", string(content))
	}

	if err := WriteChecksum(&mockChecksumProvider{shouldError: true}, testFile); err == nil {
		t.Error("Expected error when checksum provider fails")
	}
	if err := WriteChecksum(&mockChecksumProvider{checksum: "x"}, "/invalid/path/dataset.zip"); err == nil {
		t.Error("Expected error when writing to an invalid path")
	}
}

func ptr(s string) *string {
	return &s
}
