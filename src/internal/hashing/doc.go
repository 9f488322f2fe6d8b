// Package hashing provides MD5 checksum helpers.
//
// ChecksumReaderProxy hashes a stream while it is being read, so a dataset
// archive can be compared with the previous download without buffering it
// twice. ChecksumStringSet fingerprints a set of strings, which is used to
// identify the currently loaded collection of warning lists.
//
//	proxy := hashing.NewMD5ReaderProxy(resp.Body)
//	content, _ := io.ReadAll(proxy)
//	checksum, _ := proxy.GetChecksum()
package hashing
