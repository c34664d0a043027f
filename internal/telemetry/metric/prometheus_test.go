package metric

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.registry == nil {
		t.Error("registry field is nil")
	}
	if r.KeysGenerated == nil {
		t.Error("KeysGenerated is nil")
	}
	if r.GenerateFailures == nil {
		t.Error("GenerateFailures is nil")
	}
	if r.HandlesOutstanding == nil {
		t.Error("HandlesOutstanding is nil")
	}
}

func TestGlobal(t *testing.T) {
	r1 := Global()
	r2 := Global()
	if r1 != r2 {
		t.Error("Global() should return the same instance")
	}
}

func TestRecordGenerate(t *testing.T) {
	r := NewRegistry()

	r.RecordGenerate("", nil)
	r.RecordGenerate("", nil)
	r.RecordGenerate(ReasonEntropy, errors.New("boom"))
	r.RecordGenerate(ReasonEmbeddedNUL, errors.New("nul"))

	if got := testutil.ToFloat64(r.KeysGenerated); got != 2 {
		t.Errorf("keys_generated_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.GenerateFailures.WithLabelValues(ReasonEntropy)); got != 1 {
		t.Errorf("generate_failures_total{reason=entropy} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.GenerateFailures.WithLabelValues(ReasonEmbeddedNUL)); got != 1 {
		t.Errorf("generate_failures_total{reason=embedded_nul} = %v, want 1", got)
	}
}

func TestRecordIssueRelease(t *testing.T) {
	r := NewRegistry()

	r.RecordIssue()
	r.RecordIssue()
	r.RecordIssue()
	r.RecordRelease(false)
	r.RecordRelease(true)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"issued", testutil.ToFloat64(r.HandlesIssued), 3},
		{"released", testutil.ToFloat64(r.HandlesReleased), 1},
		{"outstanding", testutil.ToFloat64(r.HandlesOutstanding), 2},
		{"null releases", testutil.ToFloat64(r.NullReleases), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.RecordGenerate("", nil)

	path := filepath.Join(t.TempDir(), "akirakey.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	body := string(data)

	if !strings.Contains(body, "akirakey_keys_generated_total 1") {
		t.Error("expected akirakey_keys_generated_total 1")
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("expected go_goroutines metric")
	}
}

func TestGatherer(t *testing.T) {
	r := NewRegistry()
	r.RecordIssue()

	n, err := testutil.GatherAndCount(r.Gatherer(), "akirakey_handles_outstanding")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if n != 1 {
		t.Errorf("handles_outstanding series = %d, want 1", n)
	}
}
