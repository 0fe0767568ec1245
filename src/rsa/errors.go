package rsa

import "errors"

// Sentinel error kinds. Every error this package and its callers surface
// wraps one of these with fmt.Errorf("...: %w", ...), so callers can tell
// kinds apart with errors.Is rather than parsing message text.
var (
	// ErrInvalidParameter covers an out-of-range nbits, modulus, or block.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDecodeRangeError is returned when Message.Decode encounters a
	// block that exceeds the plaintext packing bound (256^bpb) — i.e. the
	// caller handed ciphertext or other out-of-range data to Decode.
	ErrDecodeRangeError = errors.New("block exceeds plaintext packing bound")

	// ErrKeyLoadError is returned when stored data does not parse as a key.
	ErrKeyLoadError = errors.New("input does not parse as a key")

	// ErrWrongKeyForCiphertext is returned when the public view of a
	// private key does not match the key embedded in a ciphertext package.
	ErrWrongKeyForCiphertext = errors.New("key does not match the key embedded in the ciphertext")

	// ErrKeyLacksCapability is returned when a key cannot perform the
	// requested operation (decrypting with a public key, public-extracting
	// from a key that is already public).
	ErrKeyLacksCapability = errors.New("key is not capable of the requested operation")
)
