package handle

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"strings"
	"unsafe"

	"github.com/yndnr/akirakey/internal/telemetry/metric"
)

// ErrEmbeddedNUL is returned when text cannot be represented as a C string
// without truncation.
var ErrEmbeddedNUL = errors.New("handle: text contains an embedded NUL byte")

// IsEmbeddedNUL returns true if the error is or wraps ErrEmbeddedNUL.
func IsEmbeddedNUL(err error) bool {
	return errors.Is(err, ErrEmbeddedNUL)
}

// Export copies s into C memory and transfers ownership to the caller.
func Export(s string) (unsafe.Pointer, error) {
	// C.CString would silently cut the string at the first NUL.
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}

	p := unsafe.Pointer(C.CString(s))
	metric.Global().RecordIssue()
	return p, nil
}

// Release frees a handle returned by Export. A nil handle is a no-op.
func Release(p unsafe.Pointer) {
	if p == nil {
		metric.Global().RecordRelease(true)
		return
	}
	C.free(p)
	metric.Global().RecordRelease(false)
}

// String copies the text behind a live handle into Go memory.
func String(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(p))
}
