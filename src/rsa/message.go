package rsa

import (
	"fmt"
	"math/big"
)

// Message holds an ordered sequence of integers packed against (or
// produced by crypting against) Modulus, plus the Overflow byte count of
// the final plaintext block. Messages are ephemeral values: Encode
// constructs one, Map transforms one, Decode consumes one.
type Message struct {
	Numbers  []*big.Int
	Modulus  *big.Int
	Overflow int
}

// bytesPerBlock returns bpb = B/8 - 1 where B is the bit width of N rounded
// up to a whole byte, i.e. the number of plaintext bytes that pack strictly
// below N. N must exceed 256 so bpb is at least 1.
func bytesPerBlock(n *big.Int) (int, error) {
	if n.Cmp(big.NewInt(256)) <= 0 {
		return 0, fmt.Errorf("%w: modulus must exceed 256, got %s", ErrInvalidParameter, n)
	}
	nBytes := (n.BitLen() + 7) / 8
	return nBytes - 1, nil
}

// Encode partitions data into consecutive bpb-byte chunks (the last chunk
// may be short and is zero-padded on the right before big-endian packing,
// so its live bytes occupy the chunk's most significant position) and packs
// each chunk into a big-endian integer strictly below n. Overflow records
// how many bytes of data live in the final block; it is bpb when len(data)
// is an exact multiple of bpb, including the empty input (zero blocks).
func Encode(data []byte, n *big.Int) (Message, error) {
	bpb, err := bytesPerBlock(n)
	if err != nil {
		return Message{}, err
	}

	modulus := new(big.Int).Set(n)
	if len(data) == 0 {
		return Message{Numbers: nil, Modulus: modulus, Overflow: bpb}, nil
	}

	numBlocks := (len(data) + bpb - 1) / bpb
	numbers := make([]*big.Int, 0, numBlocks)
	overflow := bpb
	for i := 0; i < numBlocks; i++ {
		start := i * bpb
		end := start + bpb
		var chunk []byte
		if end > len(data) {
			chunk = make([]byte, bpb)
			copy(chunk, data[start:])
			overflow = len(data) - start
		} else {
			chunk = data[start:end]
			overflow = bpb
		}
		numbers = append(numbers, new(big.Int).SetBytes(chunk))
	}

	return Message{Numbers: numbers, Modulus: modulus, Overflow: overflow}, nil
}

// Decode reverses Encode: each block is emitted as a big-endian bpb-byte
// string, with the final block truncated to its first Overflow bytes. It
// returns ErrDecodeRangeError if any block is not in [0, 256^bpb) — the
// signal that the caller handed ciphertext (or other out-of-range data) to
// Decode instead of plaintext.
func (m Message) Decode() ([]byte, error) {
	bpb, err := bytesPerBlock(m.Modulus)
	if err != nil {
		return nil, err
	}
	bound := new(big.Int).Lsh(one, uint(bpb*8))

	out := make([]byte, 0, len(m.Numbers)*bpb)
	for i, num := range m.Numbers {
		if num.Sign() < 0 || num.Cmp(bound) >= 0 {
			return nil, fmt.Errorf("%w: block %d (%s) exceeds %s", ErrDecodeRangeError, i, num, bound)
		}
		chunk := make([]byte, bpb)
		num.FillBytes(chunk)
		if i == len(m.Numbers)-1 {
			chunk = chunk[:m.Overflow]
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// Map returns a new message with each number replaced by f(number);
// Modulus and Overflow are carried over unchanged. The per-block bound is
// not re-checked here — callers (EncryptInt/DecryptInt via the crypto
// façade) are responsible for validating blocks before crypting them.
func (m Message) Map(f func(*big.Int) *big.Int) Message {
	out := make([]*big.Int, len(m.Numbers))
	for i, n := range m.Numbers {
		out[i] = f(n)
	}
	return Message{Numbers: out, Modulus: m.Modulus, Overflow: m.Overflow}
}
