package rsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	n := big.NewInt(1 << 20) // bpb = 2
	for length := 0; length <= 24; length++ {
		data := make([]byte, length)
		for i := range data {
			data[i] = byte(i*7 + 3)
		}
		msg, err := Encode(data, n)
		require.NoError(t, err)
		got, err := msg.Decode()
		require.NoError(t, err)
		require.Equal(t, data, got)
	}
}

func TestEncodeDecodeRoundTripVariousModuli(t *testing.T) {
	for _, bits := range []int{16, 24, 32} {
		n := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		for length := 0; length <= 24; length++ {
			data := make([]byte, length)
			for i := range data {
				data[i] = byte(i*11 + 5)
			}
			msg, err := Encode(data, n)
			require.NoError(t, err)
			got, err := msg.Decode()
			require.NoError(t, err)
			require.Equal(t, data, got, "bits=%d length=%d", bits, length)
		}
	}
}

// TestEncodeDecodeRoundTripAllHighBits covers the reference test plan's
// bit-width sweep against "\xFF\xFF" specifically — all-high-bits data is
// the case most likely to expose an off-by-one in the bpb/overflow packing
// (see TestEncodeRejectsSmallModulus for the bpb=0 boundary this guards).
func TestEncodeDecodeRoundTripAllHighBits(t *testing.T) {
	data := []byte("\xFF\xFF")
	for _, bits := range []int{9, 16, 24, 32, 40} {
		n := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		msg, err := Encode(data, n)
		require.NoError(t, err, "bits=%d", bits)
		got, err := msg.Decode()
		require.NoError(t, err, "bits=%d", bits)
		require.Equal(t, data, got, "bits=%d", bits)
	}
}

func TestEncodeEmptyProducesNoBlocks(t *testing.T) {
	n := big.NewInt(1 << 20)
	msg, err := Encode(nil, n)
	require.NoError(t, err)
	require.Empty(t, msg.Numbers)

	got, err := msg.Decode()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEncodeRejectsSmallModulus(t *testing.T) {
	_, err := Encode([]byte("x"), big.NewInt(256))
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Encode([]byte("x"), big.NewInt(255))
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDecodeRejectsOutOfRangeBlock(t *testing.T) {
	n := big.NewInt(1 << 20) // bpb = 2, bound = 65536
	msg := Message{Numbers: []*big.Int{big.NewInt(70000)}, Modulus: n, Overflow: 2}
	_, err := msg.Decode()
	require.ErrorIs(t, err, ErrDecodeRangeError)
}

func TestDecodeRejectsNegativeBlock(t *testing.T) {
	n := big.NewInt(1 << 20)
	msg := Message{Numbers: []*big.Int{big.NewInt(-1)}, Modulus: n, Overflow: 2}
	_, err := msg.Decode()
	require.ErrorIs(t, err, ErrDecodeRangeError)
}

func TestMapIsPure(t *testing.T) {
	n := big.NewInt(1 << 20)
	msg, err := Encode([]byte("hello"), n)
	require.NoError(t, err)

	mapped := msg.Map(func(x *big.Int) *big.Int {
		return new(big.Int).Add(x, big.NewInt(1))
	})
	require.Equal(t, len(msg.Numbers), len(mapped.Numbers))
	for i := range msg.Numbers {
		require.NotEqual(t, msg.Numbers[i].Int64(), mapped.Numbers[i].Int64())
	}
	require.Equal(t, msg.Overflow, mapped.Overflow)
	require.Zero(t, msg.Modulus.Cmp(mapped.Modulus))
}
