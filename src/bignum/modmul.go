package bignum

import "math/big"

// NativeMathMax is the operand-size threshold below which ModMul multiplies
// natively instead of recursing via the Karatsuba split. Tests may lower it
// (even to a small value like 4) to exercise the recursive path on small
// inputs; production code leaves it at its default.
var NativeMathMax = big.NewInt(1 << 20)

// ModMul returns (x*y) mod n. x and y must be non-negative and n must be
// positive.
//
// Below NativeMathMax both operands are multiplied natively. Above it, ModMul
// recurses using the Karatsuba identity
//
//	(a + K*c)(b + K*d) = ab + K*((a+c)(b+d) - ab - cd) + K^2*cd
//
// with K = 2^floor(log2(max(x,y))/2), a = x mod K, c = x div K, b = y mod K,
// d = y div K, and ab, cd, (a+c)(b+d) each computed by a recursive ModMul
// call so every intermediate stays reduced mod n.
func ModMul(x, y, n *big.Int) *big.Int {
	if x.Sign() < 0 || y.Sign() < 0 {
		panic("bignum: ModMul requires non-negative operands")
	}
	if n.Sign() <= 0 {
		panic("bignum: ModMul requires a positive modulus")
	}
	return modMul(x, y, n)
}

func modMul(x, y, n *big.Int) *big.Int {
	if x.Cmp(NativeMathMax) < 0 && y.Cmp(NativeMathMax) < 0 {
		z := new(big.Int).Mul(x, y)
		return z.Mod(z, n)
	}

	k := karatsubaShift(x, y)
	K := new(big.Int).Lsh(bigOne, k)

	a := new(big.Int).Mod(x, K)
	c := new(big.Int).Rsh(x, k)
	b := new(big.Int).Mod(y, K)
	d := new(big.Int).Rsh(y, k)

	ab := modMul(a, b, n)
	cd := modMul(c, d, n)
	sum := modMul(new(big.Int).Add(a, c), new(big.Int).Add(b, d), n)

	mid := new(big.Int).Sub(sum, ab)
	mid.Sub(mid, cd)
	mid.Mod(mid, n)

	res := new(big.Int).Mul(K, mid)
	res.Add(res, ab)

	k2cd := new(big.Int).Lsh(cd, 2*k)
	res.Add(res, k2cd)
	res.Mod(res, n)
	return res
}

// karatsubaShift returns floor(log2(max(x, y)) / 2), the bit-shift used to
// split each operand into a high and low half.
func karatsubaShift(x, y *big.Int) uint {
	m := x
	if y.Cmp(x) > 0 {
		m = y
	}
	bl := m.BitLen()
	if bl == 0 {
		return 0
	}
	return uint((bl - 1) / 2)
}

var bigOne = big.NewInt(1)
