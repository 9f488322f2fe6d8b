// Package utils provides small helpers shared by the warninglists packages.
//
// # Components
//
//   - Path utilities: resolve paths relative to the configuration directory
//   - File utilities: close files and readers with a panic or a warning
//
// # Example Usage
//
//	dataDir := utils.GetAbsolutePath("misp-warninglists", "/etc/warninglists")
//	// Returns: /etc/warninglists/misp-warninglists
package utils
