// Package buildinfo provides build information for akirakey.
//
// Values are injected at link time:
//
//	go build -ldflags "-X github.com/yndnr/akirakey/internal/infra/buildinfo.Version=v1.0.0 \
//	  -X github.com/yndnr/akirakey/internal/infra/buildinfo.Commit=abc123"
//
// The same flags apply to the CLI and to the c-shared library.
package buildinfo
