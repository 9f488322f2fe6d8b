package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

type ChecksumProvider interface {
	GetChecksum() (string, error)
}

// ChecksumReaderProxy calculates the MD5 checksum of data as it's read.
type ChecksumReaderProxy struct {
	reader   io.Reader
	checksum hash.Hash
	read     int64
	err      error
}

func NewMD5ReaderProxy(reader io.Reader) *ChecksumReaderProxy {
	return &ChecksumReaderProxy{
		reader:   reader,
		checksum: md5.New(),
	}
}

func (p *ChecksumReaderProxy) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		p.read += int64(n)
		if _, werr := p.checksum.Write(buf[:n]); werr != nil {
			p.err = werr
			return n, werr
		}
	}
	return n, err
}

// BytesRead returns the number of bytes passed through the proxy so far.
func (p *ChecksumReaderProxy) BytesRead() int64 {
	return p.read
}

// GetChecksum returns the hex encoded MD5 of everything read so far.
func (p *ChecksumReaderProxy) GetChecksum() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return hex.EncodeToString(p.checksum.Sum(nil)), nil
}
