package bignum

import (
	"crypto/rand"
	"io"
	"math/big"
)

// DefaultPrimalityRounds is the number of independent Miller-Rabin witnesses
// IsPrime draws when the caller does not need a different false-positive
// bound. The false-positive rate is at most 4^-rounds.
const DefaultPrimalityRounds = 100

// CryptoRandSource is the production source of randomness: a cryptographically
// strong generator, as required of anything that samples candidate primes.
// It is the minimum bar for this package's randomness — see the package-level
// security note in the doc comment of package rsa for what it does not make
// safe.
var CryptoRandSource io.Reader = rand.Reader

var (
	bigZero  = big.NewInt(0)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// IsPrime reports whether x is probably prime, drawing `rounds` independent
// witnesses from src (io.Reader; production callers pass CryptoRandSource,
// tests pass a seeded deterministic source so a run is reproducible). The
// witness distribution need not be cryptographic — only IsPrime's own use of
// randomness in production needs to be.
//
// For each base a in [1, x-1]: compute v = a^u mod x via repeated squaring
// where x-1 = u * 2^t with u odd, tracking whether v has already passed
// through 1 once. A non-trivial square root of 1 (v becomes 1 immediately
// after a value that was neither 1 nor x-1) declares x composite; this is
// the check that catches Carmichael numbers, which pass the plain Fermat
// test for every base coprime to them.
func IsPrime(x *big.Int, rounds int, src io.Reader) bool {
	if x.Sign() < 0 {
		panic("bignum: IsPrime requires a non-negative operand")
	}
	switch {
	case x.Cmp(bigZero) == 0 || x.Cmp(bigOne) == 0:
		return false
	case x.Cmp(bigTwo) == 0 || x.Cmp(bigThree) == 0:
		return true
	case x.Bit(0) == 0:
		return false
	}

	xm1 := new(big.Int).Sub(x, bigOne)
	u := new(big.Int).Set(xm1)
	t := 0
	for u.Bit(0) == 0 {
		u.Rsh(u, 1)
		t++
	}

	// bases are drawn uniformly from [1, x-1]: rand.Int gives [0, x-2],
	// shifted up by one.
	maxExclusive := new(big.Int).Sub(x, bigOne)
	for i := 0; i < rounds; i++ {
		a, err := rand.Int(src, maxExclusive)
		if err != nil {
			return false
		}
		a.Add(a, bigOne)
		if !millerRabinWitness(a, u, t, x, xm1) {
			return false
		}
	}
	return true
}

// millerRabinWitness runs one base a through the repeated-squaring check and
// reports whether x survives it (false means x is declared composite).
func millerRabinWitness(a, u *big.Int, t int, x, xm1 *big.Int) bool {
	val := ModExp(a, u, x)
	foundFirstOne := val.Cmp(bigOne) == 0

	for i := 0; i < t; i++ {
		newVal := ModMul(val, val, x)
		if newVal.Cmp(bigOne) == 0 && !foundFirstOne {
			foundFirstOne = true
			if val.Cmp(xm1) != 0 {
				return false
			}
		}
		val = newVal
	}
	return val.Cmp(bigOne) == 0
}

// RandomPrime samples uniformly from [2^(nbits-1), 2^nbits - 1] until it
// finds a value IsPrime accepts. nbits must be greater than 2.
func RandomPrime(nbits int, src io.Reader) (*big.Int, error) {
	if nbits <= 2 {
		panic("bignum: RandomPrime requires nbits > 2")
	}
	lo := new(big.Int).Lsh(bigOne, uint(nbits-1))
	span := new(big.Int).Lsh(bigOne, uint(nbits-1)) // 2^nbits - lo

	for {
		r, err := rand.Int(src, span)
		if err != nil {
			return nil, err
		}
		candidate := new(big.Int).Add(lo, r)
		if IsPrime(candidate, DefaultPrimalityRounds, src) {
			return candidate, nil
		}
	}
}
