// Package log provides simple leveled logging for warninglists.
//
// Messages are written with colored level prefixes: DEBUG, INFO, WARN and
// ERROR. Debug output is only shown in verbose mode, errors always go to
// stderr.
//
// # Example Usage
//
//	log.Infof("Loaded %d warning lists from %s", n, dir)
//	log.Warnf("List %q: skipped %d malformed entries", name, skipped)
//
//	log.SetVerbose(true)
//	log.Debugf("Matcher for %q compiled as %s", name, kind)
//
// Commands that print machine-readable output on stdout call
// SetForceStdErr(true) so log lines never interleave with results.
package log
