// Package main provides the entry point for the akirakey CLI.
//
// Usage:
//
//	akirakey generate [-n COUNT] [--rate N] [--locked-memory]
//	akirakey fingerprint KEY...
//	akirakey config show
//	akirakey version
//
// Configuration is read from --config (YAML), AKIRAKEY_* environment
// variables and flags, in increasing priority.
package main
