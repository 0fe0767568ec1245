package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModExpEdgeNoMod(t *testing.T) {
	require.Equal(t, int64(1), ModExp(bi(0), bi(0), bi(100)).Int64())
	require.Equal(t, int64(0), ModExp(bi(0), bi(1), bi(100)).Int64())
	require.Equal(t, int64(0), ModExp(bi(0), bi(10), bi(100)).Int64())

	require.Equal(t, int64(1), ModExp(bi(1), bi(0), bi(100)).Int64())
	require.Equal(t, int64(1), ModExp(bi(1), bi(1), bi(100)).Int64())
	require.Equal(t, int64(1), ModExp(bi(1), bi(13), bi(100)).Int64())

	require.Equal(t, int64(1), ModExp(bi(5), bi(0), bi(100)).Int64())
	require.Equal(t, int64(5), ModExp(bi(5), bi(1), bi(100)).Int64())
	require.Equal(t, int64(25), ModExp(bi(5), bi(2), bi(100)).Int64())
}

func TestModExpSmallPowersNoMod(t *testing.T) {
	for _, b := range []int64{2, 5} {
		for i := int64(0); i < 10; i++ {
			want := new(big.Int).Exp(bi(b), bi(i), nil)
			require.Zero(t, want.Cmp(ModExp(bi(b), bi(i), bi(10000000))))
		}
	}
}

func TestModExpModEdge(t *testing.T) {
	require.Equal(t, int64(0), ModExp(bi(5), bi(2), bi(1)).Int64())
	require.Equal(t, int64(0), ModExp(bi(0), bi(0), bi(1)).Int64())
	require.Equal(t, int64(0), ModExp(bi(0), bi(1), bi(1)).Int64())
	require.Equal(t, int64(0), ModExp(bi(1), bi(0), bi(1)).Int64())
	require.Equal(t, int64(0), ModExp(bi(1), bi(1), bi(1)).Int64())
}

func TestModExpParity(t *testing.T) {
	for i := int64(1); i < 20; i++ {
		require.Equal(t, int64(0), ModExp(bi(2), bi(i), bi(2)).Int64())
		require.Equal(t, int64(1), ModExp(bi(3), bi(i), bi(2)).Int64())
	}
}

func TestModExpStress(t *testing.T) {
	r := rand.New(rand.NewSource(34))
	for i := 0; i < 50; i++ {
		x := int64(r.Intn(101))
		y := int64(r.Intn(101))
		n := int64(r.Intn(100) + 1)
		want := new(big.Int).Exp(bi(x), bi(y), bi(n))
		require.Zero(t, want.Cmp(ModExp(bi(x), bi(y), bi(n))))
	}
}

func TestModExpPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { ModExp(bi(-1), bi(2), bi(5)) })
	require.Panics(t, func() { ModExp(bi(1), bi(-2), bi(5)) })
	require.Panics(t, func() { ModExp(bi(1), bi(2), bi(0)) })
}
