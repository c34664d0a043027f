// Package main builds libakirakey, the C ABI for AKIRA key generation.
//
// Build:
//
//	go build -buildmode=c-shared -o libakirakey.so ./cmd/libakirakey
//
// Exported symbols:
//
//	char *generate_key(void);
//	void  free_key(char *key);
//	char *generate_akira_key(void);   // same as generate_key
//	void  free_akira_key(char *key);  // same as free_key
//	int   write_metrics(const char *path);
//
// Each returned string is owned by the caller and is released with
// free_key exactly once. free_key(NULL) does nothing. A caller may also
// keep the string for the life of the process and never release it.
//
// Generation failure (no entropy) aborts the process.
//
// write_metrics writes the library's Prometheus metrics to path atomically
// and returns 0, or -1 on failure. akirakey_handles_outstanding counts
// strings issued and not yet released, which is how a host spots leaks.
package main
