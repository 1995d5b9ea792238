// Package utils provides general-purpose utility functions for hashbox.
//
// This package contains small helper functions used across the application
// for path handling and file operations.
//
// # Components
//
//   - Path utilities: Handle absolute and relative paths
//   - File utilities: Safe file closing and existence checks
//
// # Example Usage
//
// Path resolution:
//
//	absPath := utils.GetAbsolutePath("manifests/release.md5", "/etc/hashbox")
//	// Returns: /etc/hashbox/manifests/release.md5
//
// File helpers:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer utils.CloseOrWarn(f)
//
// The utilities in this package are designed to be simple, focused, and
// reusable across different parts of the application.
package utils
