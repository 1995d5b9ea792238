// Package commands implements CLI command handlers for hashbox.
//
// This package provides the command-line interface layer for the
// application, implementing subcommands like sum, verify, index, watch and
// serve. Each command implements the Runner interface and delegates
// business logic to the digest, manifest, store and watcher packages.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments and load configuration
//   - Run(): Execute command using the library packages
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - sum: Compute digests for files, stdin or literal text
//   - verify: Check files against a digest manifest
//   - algorithms: List supported digest algorithms
//   - index: Compute digests into the persistent index store
//   - watch: Monitor watch targets and recompute digests on change
//   - serve: Run the REST API server
//   - config: Print or upgrade the effective configuration
//
// Commands are thin wrappers that orchestrate library operations, keeping
// CLI concerns separate from digest logic.
package commands
