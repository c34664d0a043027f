package akirakey

import "testing"

func BenchmarkGenerate(b *testing.B) {
	g := New()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_LockedMemory(b *testing.B) {
	g := New(WithLockedMemory())
	b.ReportAllocs()
	for b.Loop() {
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFingerprint(b *testing.B) {
	key, err := Generate()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = Fingerprint(key)
	}
}
