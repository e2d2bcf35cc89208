package hv_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hyperrewrite/hv"
	"github.com/katalvlaran/hyperrewrite/rng"
)

// BenchmarkMaj measures bundling N hypervectors, the hot path
// post.BranchialCoordinates exercises once per event with >1 parent.
func BenchmarkMaj(b *testing.B) {
	r := rng.FromSeed(11)
	for _, n := range []int{2, 4, 8, 16} {
		vs := make([]hv.Vector, n)
		for i := range vs {
			vs[i] = hv.Random(r)
		}
		tie := hv.Random(r)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = hv.Maj(vs, tie)
			}
		})
	}
}

// BenchmarkDist measures Hamming distance over the full 10,240-bit width.
func BenchmarkDist(b *testing.B) {
	r := rng.FromSeed(12)
	a := hv.Random(r)
	c := hv.Random(r)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hv.Dist(a, c)
	}
}
