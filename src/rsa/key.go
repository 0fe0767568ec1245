// Package rsa implements the key lifecycle, message codec, and crypto
// façade of a didactic RSA cryptosystem. The number-theoretic heavy lifting
// (extended Euclid, modular multiplication/exponentiation, Miller-Rabin
// primality) lives in textbookrsa/src/bignum; this package wires it into
// keys, messages, and the encrypt/decrypt operations a caller actually
// wants.
//
// This is a teaching implementation. There is no padding (OAEP or PKCS#1
// v1.5), no side-channel resistance, no constant-time arithmetic, and no key
// erasure. Every plaintext block is RSA-crypted independently — the crypto
// façade in crypto.go is deliberately ECB-equivalent. Do not use this for
// anything that needs to stay secret.
package rsa

import (
	"fmt"
	"io"
	"math/big"

	"textbookrsa/src/bignum"
)

var one = big.NewInt(1)

// PrivateKey is an RSA private key: the modulus N, decryption exponent D,
// and the corresponding public exponent E. P, Q, and Phi are retained
// alongside for didactic inspection — nothing in this package requires
// keeping them and they are not zeroized on drop (key erasure is a
// non-goal).
type PrivateKey struct {
	N *big.Int
	E *big.Int
	D *big.Int

	P   *big.Int
	Q   *big.Int
	Phi *big.Int
}

// PublicKey is an RSA public key: the modulus N and encryption exponent E.
// It carries no knowledge of P, Q, D, or Phi.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// Generate creates a new private key from two distinct random primes of the
// requested bit length. nbits must be greater than 2 for the underlying
// prime search to make sense; callers driving a CLI with a stricter floor
// (e.g. 8, so the message codec has a block to work with) enforce that
// separately.
//
// src supplies randomness for both the prime search and the Miller-Rabin
// witnesses. Production callers should pass bignum.CryptoRandSource; tests
// pass a seeded deterministic source so a run is reproducible — see
// bignum.SeededSource. Concurrent calls are safe as long as each goroutine
// owns its own src.
func Generate(nbits int, src io.Reader) (*PrivateKey, error) {
	if nbits < 3 {
		return nil, fmt.Errorf("%w: nbits must be > 2, got %d", ErrInvalidParameter, nbits)
	}

	p, err := bignum.RandomPrime(nbits, src)
	if err != nil {
		return nil, fmt.Errorf("generating p: %w", err)
	}
	var q *big.Int
	for {
		q, err = bignum.RandomPrime(nbits, src)
		if err != nil {
			return nil, fmt.Errorf("generating q: %w", err)
		}
		if q.Cmp(p) != 0 {
			break
		}
	}

	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	phi := new(big.Int).Mul(pm1, qm1)

	// Search for the smallest e >= 2 with gcd(e, phi) = 1 and d != e.
	e := big.NewInt(2)
	var d *big.Int
	for {
		if cand, ok := bignum.ModInv(e, phi); ok && cand.Cmp(e) != 0 {
			d = cand
			break
		}
		e = new(big.Int).Add(e, one)
	}

	n := new(big.Int).Mul(p, q)
	return &PrivateKey{N: n, E: e, D: d, P: p, Q: q, Phi: phi}, nil
}

// Public returns the public view of k as an independent value — mutating
// the result never affects k.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{N: new(big.Int).Set(k.N), E: new(big.Int).Set(k.E)}
}

// Equal reports whether k and other have the same (N, E, D).
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	if other == nil {
		return false
	}
	return k.N.Cmp(other.N) == 0 && k.E.Cmp(other.E) == 0 && k.D.Cmp(other.D) == 0
}

// Equal reports whether k and other have the same (N, E).
func (k *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return k.N.Cmp(other.N) == 0 && k.E.Cmp(other.E) == 0
}

// EncryptInt returns m^E mod N. m must be in [0, N).
func (k *PublicKey) EncryptInt(m *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(k.N) >= 0 {
		return nil, fmt.Errorf("%w: block %s out of range [0, %s)", ErrInvalidParameter, m, k.N)
	}
	return bignum.ModExp(m, k.E, k.N), nil
}

// DecryptInt returns c^D mod N. c must be in [0, N). For every m in [0, N),
// k.DecryptInt(k.Public().EncryptInt(m)) == m.
func (k *PrivateKey) DecryptInt(c *big.Int) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(k.N) >= 0 {
		return nil, fmt.Errorf("%w: block %s out of range [0, %s)", ErrInvalidParameter, c, k.N)
	}
	return bignum.ModExp(c, k.D, k.N), nil
}
