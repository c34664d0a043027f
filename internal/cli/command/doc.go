// Package command provides CLI command definitions for akirakey.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: root command, global flags, configuration and logging setup
//   - generate.go: key generation
//   - fingerprint.go: key fingerprints
//   - config.go: effective configuration
//   - version.go: build information
//
// Every action loads configuration first, renders its result with the
// selected output format and writes the metrics textfile last.
package command
