// Package confloader provides configuration loading for akirakey tools.
//
// It uses koanf with the following priority (highest to lowest):
//
//  1. Command-line flags (LoadMap)
//  2. Environment variables (AKIRAKEY_SECTION_KEY)
//  3. Configuration file (YAML)
//  4. Default values already present in the target struct
//
// The C library never loads configuration; only the CLI does.
package confloader
