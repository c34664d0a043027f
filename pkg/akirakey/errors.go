package akirakey

import "errors"

// ErrEntropyUnavailable is returned when the entropy source cannot supply
// a full key's worth of random bytes.
var ErrEntropyUnavailable = errors.New("akirakey: entropy source unavailable")

// IsEntropyUnavailable returns true if the error is or wraps ErrEntropyUnavailable.
func IsEntropyUnavailable(err error) bool {
	return errors.Is(err, ErrEntropyUnavailable)
}

// ErrLockedMemoryUnavailable is returned when WithLockedMemory is set and
// the guarded buffer cannot be allocated, typically because mlock failed
// under a low RLIMIT_MEMLOCK.
var ErrLockedMemoryUnavailable = errors.New("akirakey: locked memory unavailable")

// IsLockedMemoryUnavailable returns true if the error is or wraps ErrLockedMemoryUnavailable.
func IsLockedMemoryUnavailable(err error) bool {
	return errors.Is(err, ErrLockedMemoryUnavailable)
}
