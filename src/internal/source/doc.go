// Package source reads warning list definitions from disk and keeps the
// on-disk dataset up to date.
//
// The dataset uses the MISP warninglists layout: one directory per list,
// each holding a list.json file.
//
//	<data_dir>/lists/<list>/list.json
//
// LoadDir decodes every list.json into a warninglist.Definition. Fetch
// downloads the dataset archive and replaces the lists directory when the
// archive checksum changed. Watcher reports changes in the lists directory
// so the caller can rebuild its collection.
package source
