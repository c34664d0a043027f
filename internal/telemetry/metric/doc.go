// Package metric provides Prometheus metrics for akirakey.
//
// Metrics include:
//
//   - Keys generated and generation failures by reason
//   - Handles issued and released across the C boundary
//   - Outstanding handles (issued but not yet released)
//   - Releases of null handles
//
// Outstanding handles are never reclaimed by the library. A host that
// skips free_key shows up as a steadily growing outstanding gauge.
//
// The CLI exports the registry in the node_exporter textfile format.
package metric
