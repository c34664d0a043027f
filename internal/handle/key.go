package handle

import (
	"unsafe"

	"github.com/yndnr/akirakey/internal/telemetry/logger"
	"github.com/yndnr/akirakey/internal/telemetry/metric"
	"github.com/yndnr/akirakey/pkg/akirakey"
)

// NewKey generates a key with g and exports it as a handle.
func NewKey(g *akirakey.Generator) (unsafe.Pointer, error) {
	key, err := g.Generate()
	if err != nil {
		metric.Global().RecordGenerate(metric.ReasonEntropy, err)
		return nil, err
	}

	p, err := Export(key)
	if err != nil {
		metric.Global().RecordGenerate(metric.ReasonEmbeddedNUL, err)
		return nil, err
	}

	metric.Global().RecordGenerate("", nil)
	return p, nil
}

// MustNewKey is NewKey for the C boundary, where no error can be returned.
// A failure is logged and then panics, which aborts the host process.
func MustNewKey(g *akirakey.Generator) unsafe.Pointer {
	p, err := NewKey(g)
	if err != nil {
		logger.Error("key generation failed", "error", err)
		panic(err)
	}
	return p
}
