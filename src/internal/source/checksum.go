package source

import (
	"bytes"
	stderrors "errors"
	"os"

	"github.com/maksimkurb/warninglists/src/internal/hashing"
	"github.com/maksimkurb/warninglists/src/internal/log"
)

const checksumSuffix = ".md5"

// IsFileChanged compares the checksum of freshly read content with the
// ".md5" sidecar of filePath. A missing file or sidecar counts as changed.
func IsFileChanged(checksumProxy hashing.ChecksumProvider, filePath string) (bool, error) {
	if _, err := os.Stat(filePath); stderrors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	sum, err := checksumProxy.GetChecksum()
	if err != nil {
		return false, err
	}

	checksumFilePath := filePath + checksumSuffix
	stored, err := os.ReadFile(checksumFilePath)
	if err != nil {
		log.Debugf("Failed to read checksum file '%s', assuming it's changed: %v", checksumFilePath, err)
		return true, nil
	}
	return string(bytes.TrimSpace(stored)) != sum, nil
}

// WriteChecksum stores the checksum next to filePath.
func WriteChecksum(checksumProxy hashing.ChecksumProvider, filePath string) error {
	sum, err := checksumProxy.GetChecksum()
	if err != nil {
		return err
	}
	return os.WriteFile(filePath+checksumSuffix, []byte(sum), 0644)
}
