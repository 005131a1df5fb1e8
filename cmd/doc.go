// Package cmd implements the command-line interface for the wirecall
// client. It provides a hierarchical command structure for issuing calls
// against a remote server over either channel.
//
// The package is organized into several subpackages:
//
//   - call: Commands for invoking remote procedures and reading or
//     writing remote properties
//   - batch: Command for sending several calls as one physical round trip
//   - ping: Command for checking endpoint reachability
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See wirecall -help for a list of all commands.
package cmd
