package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtGCDCoprime(t *testing.T) {
	cases := []struct{ a, b int64 }{{25, 11}, {9, 13}, {8, 15}}
	for _, c := range cases {
		a, b := big.NewInt(c.a), big.NewInt(c.b)
		x, y, g := ExtGCD(a, b)
		lhs := new(big.Int).Add(
			new(big.Int).Mul(a, x),
			new(big.Int).Mul(b, y),
		)
		require.Zero(t, lhs.Cmp(g), "a*x+b*y should equal gcd for (%d,%d)", c.a, c.b)
	}
}

func TestExtGCDNotCoprime(t *testing.T) {
	_, _, g := ExtGCD(big.NewInt(3), big.NewInt(9))
	require.Equal(t, int64(3), g.Int64())

	_, _, g = ExtGCD(big.NewInt(33), big.NewInt(22))
	require.Equal(t, int64(11), g.Int64())
}

func TestExtGCDFlipSwapsCoefficients(t *testing.T) {
	cases := []struct{ a, b int64 }{{15, 8}, {7, 13}, {10, 15}, {10, 21}}
	for _, c := range cases {
		x1, y1, g1 := ExtGCD(big.NewInt(c.a), big.NewInt(c.b))
		y2, x2, g2 := ExtGCD(big.NewInt(c.b), big.NewInt(c.a))
		require.Zero(t, x1.Cmp(x2), "x1 should equal x2 for (%d,%d)", c.a, c.b)
		require.Zero(t, y1.Cmp(y2), "y1 should equal y2 for (%d,%d)", c.a, c.b)
		require.Zero(t, g1.Cmp(g2), "gcd mismatch for (%d,%d)", c.a, c.b)
	}
}

func TestExtGCDBaseCase(t *testing.T) {
	x, y, g := ExtGCD(big.NewInt(7), big.NewInt(0))
	require.Equal(t, int64(1), x.Int64())
	require.Equal(t, int64(0), y.Int64())
	require.Equal(t, int64(7), g.Int64())
}

func TestGcd(t *testing.T) {
	require.Equal(t, int64(1), Gcd(big.NewInt(3), big.NewInt(4)).Int64())
	require.Equal(t, int64(1), Gcd(big.NewInt(4), big.NewInt(3)).Int64())
	require.Equal(t, int64(5), Gcd(big.NewInt(10), big.NewInt(25)).Int64())
	require.Equal(t, int64(1), Gcd(big.NewInt(11), big.NewInt(17)).Int64())
	require.Equal(t, int64(11), Gcd(big.NewInt(561), big.NewInt(253)).Int64())
}

func TestExtGCDPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { ExtGCD(big.NewInt(-1), big.NewInt(5)) })
}
