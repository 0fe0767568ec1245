// Package bignum implements the number-theoretic kernel textbookrsa is built
// on: the extended Euclidean algorithm, modular multiplication with a
// Karatsuba-style recursive split, modular exponentiation, and Miller-Rabin
// primality testing. It is deliberately hand-rolled rather than delegated to
// math/big's own Exp/ModInverse/GCD/ProbablyPrime — math/big is used here
// only as the arbitrary-precision substrate (add, subtract, shift, compare,
// divmod), per the system's design.
package bignum

import "math/big"

// ExtGCD returns x, y, g such that a*x + b*y = g = gcd(a, b). a and b must be
// non-negative.
//
// ExtGCD(a, 0) = (1, 0, a). When b > a the algorithm works on the swapped
// pair internally; the returned coefficients are swapped back so the first
// one always multiplies a and the second always multiplies b, regardless of
// which was larger.
func ExtGCD(a, b *big.Int) (x, y, g *big.Int) {
	if a.Sign() < 0 || b.Sign() < 0 {
		panic("bignum: ExtGCD requires non-negative operands")
	}
	return extGCD(a, b)
}

func extGCD(a, b *big.Int) (*big.Int, *big.Int, *big.Int) {
	flip := b.Cmp(a) > 0
	if flip {
		a, b = b, a
	}
	if b.Sign() == 0 {
		if flip {
			return big.NewInt(0), big.NewInt(1), new(big.Int).Set(a)
		}
		return big.NewInt(1), big.NewInt(0), new(big.Int).Set(a)
	}

	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)

	x, y, g := extGCD(b, r)
	ny := y
	nx := new(big.Int).Sub(x, new(big.Int).Mul(q, y))
	if flip {
		ny, nx = nx, ny
	}
	return ny, nx, g
}

// Gcd returns gcd(a, b). a and b must be non-negative.
func Gcd(a, b *big.Int) *big.Int {
	_, _, g := ExtGCD(a, b)
	return g
}
