package rsa

import (
	"fmt"
	"math/big"
)

// Encrypt crypts every block of msg under k, rejecting the whole message
// up front if any block is not in [0, N) rather than crypting a partial
// prefix and failing midway. It mirrors the reference's
// "assert all(0 <= n < N for n in message.numbers)" followed by a pure map.
func (k *PublicKey) Encrypt(msg Message) (Message, error) {
	for i, n := range msg.Numbers {
		if n.Sign() < 0 || n.Cmp(k.N) >= 0 {
			return Message{}, fmt.Errorf("%w: block %d (%s) out of range [0, %s)", ErrInvalidParameter, i, n, k.N)
		}
	}
	return msg.Map(func(n *big.Int) *big.Int {
		c, _ := k.EncryptInt(n)
		return c
	}), nil
}

// Decrypt crypts every block of msg under k, with the same all-or-nothing
// bound check as Encrypt.
func (k *PrivateKey) Decrypt(msg Message) (Message, error) {
	for i, n := range msg.Numbers {
		if n.Sign() < 0 || n.Cmp(k.N) >= 0 {
			return Message{}, fmt.Errorf("%w: block %d (%s) out of range [0, %s)", ErrInvalidParameter, i, n, k.N)
		}
	}
	return msg.Map(func(n *big.Int) *big.Int {
		m, _ := k.DecryptInt(n)
		return m
	}), nil
}
