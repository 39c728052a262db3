package typedindex

import "testing"

// The typed accessors are expected to compile down to native indexing;
// these benchmarks exist to catch a regression that would add work.

func BenchmarkNativeIndex(b *testing.B) {
	s := make(integers, 1024)
	var sink int

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink += s[i&1023]
	}
	_ = sink
}

func BenchmarkTypedAt(b *testing.B) {
	s := make(integers, 1024)
	idx := IndexTo(s, 0)
	var sink int

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink += At(s, idx.WithRaw(i&1023))
	}
	_ = sink
}
