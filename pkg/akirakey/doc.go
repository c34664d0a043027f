// Package akirakey generates AKIRA API keys.
//
// Key Format:
//
//   - Prefix: akira_rust_ (11 characters)
//   - Body: 43 characters of Base64 RawURL encoded random bytes (32 bytes)
//   - Total: 54 characters
//
// Fingerprint Format:
//
//   - 64 characters of lowercase hex-encoded SHA-256 over the full key text
//
// Security:
//
//   - Uses crypto/rand for CSPRNG unless another entropy source is injected
//   - Raw entropy is wiped after encoding, optionally held in mlocked memory
//   - Keys are returned to the caller and never retained by the generator
package akirakey
