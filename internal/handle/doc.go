// Package handle moves key text across the C boundary.
//
// A handle is a NUL-terminated copy of a key allocated with the C
// allocator. Ownership passes to the host on return from Export and comes
// back only through Release:
//
//	owned by host --Release--> released (terminal)
//
// No registry of live handles is kept. Releasing a handle twice, releasing
// a pointer that Export did not produce, or reading a handle after release
// is undefined behaviour. A host that never calls Release leaks the handle;
// the outstanding count in package metric makes that visible.
package handle
