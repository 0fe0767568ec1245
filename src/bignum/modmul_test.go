package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func bi(n int64) *big.Int { return big.NewInt(n) }

func TestModMulEdgeNoMod(t *testing.T) {
	require.Equal(t, int64(0), ModMul(bi(0), bi(0), bi(100)).Int64())
	require.Equal(t, int64(0), ModMul(bi(0), bi(1), bi(100)).Int64())
	require.Equal(t, int64(0), ModMul(bi(1), bi(0), bi(100)).Int64())
	require.Equal(t, int64(1), ModMul(bi(1), bi(1), bi(100)).Int64())
	require.Equal(t, int64(50), ModMul(bi(1), bi(50), bi(100)).Int64())
	require.Equal(t, int64(50), ModMul(bi(50), bi(1), bi(100)).Int64())
}

func TestModMulSmallExhaustiveNoMod(t *testing.T) {
	for a := int64(0); a < 10; a++ {
		for b := int64(0); b < 10; b++ {
			require.Equal(t, a*b, ModMul(bi(a), bi(b), bi(100)).Int64())
		}
	}
}

func TestModMulModEdge(t *testing.T) {
	require.Equal(t, int64(0), ModMul(bi(3), bi(3), bi(1)).Int64())
	require.Equal(t, int64(1), ModMul(bi(3), bi(3), bi(2)).Int64())
	require.Equal(t, int64(0), ModMul(bi(3), bi(3), bi(3)).Int64())
	require.Equal(t, int64(1), ModMul(bi(3), bi(3), bi(4)).Int64())
}

func TestModMulStress(t *testing.T) {
	r := rand.New(rand.NewSource(34))
	for i := 0; i < 50; i++ {
		x := int64(r.Intn(101))
		y := int64(r.Intn(101))
		n := int64(r.Intn(100) + 1)
		want := (x * y) % n
		require.Equal(t, want, ModMul(bi(x), bi(y), bi(n)).Int64())
	}
}

// TestModMulLowNativeMathMax exercises the Karatsuba recursion by lowering
// the native-multiplication threshold to a tiny value: every stress input
// above that threshold now forces at least one recursive split.
func TestModMulLowNativeMathMax(t *testing.T) {
	orig := NativeMathMax
	NativeMathMax = big.NewInt(4)
	defer func() { NativeMathMax = orig }()

	r := rand.New(rand.NewSource(34))
	for i := 0; i < 200; i++ {
		x := big.NewInt(r.Int63n(1 << 40))
		y := big.NewInt(r.Int63n(1 << 40))
		n := big.NewInt(r.Int63n(1<<40) + 1)
		want := new(big.Int).Mod(new(big.Int).Mul(x, y), n)
		got := ModMul(x, y, n)
		require.Zero(t, want.Cmp(got), "ModMul(%s,%s,%s): want %s got %s", x, y, n, want, got)
	}
}

func TestModMulPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { ModMul(bi(-1), bi(2), bi(5)) })
	require.Panics(t, func() { ModMul(bi(1), bi(2), bi(0)) })
}
