// Package config handles configuration file parsing and validation for
// warninglists.
//
// The configuration is a TOML file describing where the warning list dataset
// lives on disk, where it is fetched from, how lookups are presented and how
// the HTTP API and directory watcher behave. A missing file is not an error
// for LoadOrDefault: every field has a usable default.
//
// # Example Usage
//
//	cfg, err := config.LoadOrDefault("/etc/warninglists/warninglists.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	fmt.Println(cfg.GetAbsListsDir())
//
// Relative paths are resolved against the directory of the configuration
// file.
package config
