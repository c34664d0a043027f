// Package output renders akirakey CLI results.
//
// Formats:
//
//   - table: aligned columns via text/tabwriter (default)
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
//
// Results destined for the table format implement Tabular.
package output
