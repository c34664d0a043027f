package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/yndnr/akirakey/internal/handle"
	"github.com/yndnr/akirakey/internal/telemetry/logger"
	"github.com/yndnr/akirakey/internal/telemetry/metric"
	"github.com/yndnr/akirakey/pkg/akirakey"
)

var generator = akirakey.New()

var errNoMetricsPath = errors.New("metrics path is empty")

//export generate_key
func generate_key() *C.char {
	return (*C.char)(handle.MustNewKey(generator))
}

//export free_key
func free_key(key *C.char) {
	handle.Release(unsafe.Pointer(key))
}

//export generate_akira_key
func generate_akira_key() *C.char {
	return generate_key()
}

//export free_akira_key
func free_akira_key(key *C.char) {
	free_key(key)
}

//export write_metrics
func write_metrics(path *C.char) C.int {
	if err := writeMetrics(C.GoString(path)); err != nil {
		return -1
	}
	return 0
}

// writeMetrics writes the library's metrics in Prometheus text format,
// for a node_exporter textfile collector or a host's own scrape.
func writeMetrics(path string) error {
	if path == "" {
		return errNoMetricsPath
	}
	if err := metric.Global().WriteTextfile(path); err != nil {
		logger.Error("metrics textfile not written", "path", path, "error", err)
		return err
	}
	return nil
}

func main() {}
