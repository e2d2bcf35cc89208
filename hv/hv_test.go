package hv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperrewrite/hv"
	"github.com/katalvlaran/hyperrewrite/rng"
)

func TestXorInvolutive(t *testing.T) {
	r := rng.FromSeed(1)
	a := hv.Random(r)
	b := hv.Random(r)

	require.True(t, hv.Equal(b, hv.Xor(a, hv.Xor(a, b))))
}

func TestRotRoundTrip(t *testing.T) {
	r := rng.FromSeed(2)
	v := hv.Random(r)

	for _, k := range []int{0, 1, 31, 32, 33, 5000, 10239, -1, -33, -5000} {
		rotated := hv.Rot(v, k)
		back := hv.Rot(rotated, -k)
		require.True(t, hv.Equal(v, back), "k=%d", k)
	}
}

func TestRotComposesAdditively(t *testing.T) {
	r := rng.FromSeed(3)
	v := hv.Random(r)

	a, b := 17, 4001
	composed := hv.Rot(hv.Rot(v, a), b)
	direct := hv.Rot(v, a+b)
	require.True(t, hv.Equal(composed, direct))
}

func TestDistRange(t *testing.T) {
	r := rng.FromSeed(4)
	a := hv.Random(r)
	b := hv.Random(r)

	require.Equal(t, 0, hv.Dist(a, a))
	d := hv.Dist(a, b)
	require.GreaterOrEqual(t, d, 0)
	require.LessOrEqual(t, d, hv.Bits)
}

func TestMajSingle(t *testing.T) {
	r := rng.FromSeed(5)
	v := hv.Random(r)
	require.True(t, hv.Equal(v, hv.Maj([]hv.Vector{v}, hv.Vector{})))
}

func TestMajOddMatchesMajority(t *testing.T) {
	r := rng.FromSeed(6)
	a := hv.Random(r)
	b := hv.Random(r)
	c := a // duplicate a so a has a 2-1 majority over b on every differing bit

	got := hv.Maj([]hv.Vector{a, b, c}, hv.Vector{})
	require.True(t, hv.Equal(a, got))
}

func TestMajEvenTieUsesTieBreak(t *testing.T) {
	r := rng.FromSeed(7)
	a := hv.Random(r)
	ones := hv.Random(constSource{}) // all-ones vector
	b := hv.Xor(a, ones)             // b is the exact complement of a: every bit splits 1-1
	tie := hv.Random(r)

	got := hv.Maj([]hv.Vector{a, b}, tie)
	require.True(t, hv.Equal(tie, got))
}

// constSource is a test-only rng.Source that always returns all-ones
// words, used to materialize an explicit all-ones Vector for the
// even-tie test above.
type constSource struct{}

func (constSource) Uint64() uint64                    { return ^uint64(0) }
func (constSource) Shuffle(n int, swap func(i, j int)) {}
