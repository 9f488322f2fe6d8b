// Package warninglist is the matching engine for warning lists: curated sets
// of known-benign or ambiguous indicators (cloud provider ranges, popular
// domains, false-positive hashes) used to suppress noisy alerts.
//
// A Collection is loaded once from parsed Definitions. Every definition is
// compiled into a Matcher selected from its declared type and the shape of its
// entries:
//
//   - cidr, or every entry is an IP/CIDR literal: CIDR containment
//   - string: exact, case-insensitive comparison
//   - hostname: the value equals an entry or is a subdomain of it
//   - anything else (substring, regex, missing, unknown): bidirectional
//     substring containment
//
// Malformed entries are skipped and counted in BuildStats; they never fail a
// load. A loaded Collection is immutable and safe for concurrent lookups.
// Reloads build a new Collection and swap it in through a Store.
//
// # Example Usage
//
//	c, err := warninglist.Load(defs)
//	if err != nil {
//	    return err // duplicate list names
//	}
//
//	names, err := c.Lookup("8.8.8.8")
//	names, err = c.Lookup("example.com", "List of known google domains")
//
// The package performs no I/O: reading list files and fetching datasets is
// the job of the source package.
package warninglist
