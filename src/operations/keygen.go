package operations

import (
	"fmt"
	"io"

	"textbookrsa/src/bignum"
	"textbookrsa/src/filefmt"
	"textbookrsa/src/rsa"
)

// MinCLIKeyBits is the smallest nbits the keygen CLI accepts. At this size
// N = p*q is at least 128*131, comfortably above the N > 256 that
// bytesPerBlock needs, so every accepted key has room for a codec block
// (a 4-bit key, N = 11*13 = 143, has none).
// The rsa package itself only requires nbits > 2 for Generate, since the
// library-level contract is about raw integer encrypt_int/decrypt_int, not
// the codec.
const MinCLIKeyBits = 8

// KeygenOptions contains the parameters needed to generate a key.
type KeygenOptions struct {
	NBits      int
	OutFile    string // "-" means stdout, private key only
	RandSource io.Reader
}

// KeygenResult describes what KeygenFile produced.
type KeygenResult struct {
	NBits      int
	OutFile    string
	PubFile    string // empty when OutFile is "-"
	WroteToOut bool
}

// KeygenFile generates a private key of the requested bit length and
// writes it to opts.OutFile. Unless OutFile is "-", it also writes the
// corresponding public key to OutFile + ".pub" — per the source CLI's
// stdout special case, "-" writes the private key only and emits no
// sibling public file.
func KeygenFile(opts KeygenOptions) (*KeygenResult, error) {
	if opts.NBits < MinCLIKeyBits {
		return nil, fmt.Errorf("%w: nbits must be >= %d for the CLI, got %d", rsa.ErrInvalidParameter, MinCLIKeyBits, opts.NBits)
	}

	src := opts.RandSource
	if src == nil {
		src = bignum.CryptoRandSource
	}

	priv, err := rsa.Generate(opts.NBits, src)
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	kf := filefmt.FromKey(rsa.FromPrivate(priv))
	if err := writeKeyFile(opts.OutFile, kf); err != nil {
		return nil, fmt.Errorf("writing private key: %w", err)
	}
	if opts.OutFile == stdinStdoutName {
		return &KeygenResult{NBits: opts.NBits, OutFile: opts.OutFile, WroteToOut: true}, nil
	}

	pubFile := opts.OutFile + ".pub"
	pubKF := filefmt.FromKey(rsa.FromPublic(priv.Public()))
	if err := writeKeyFile(pubFile, pubKF); err != nil {
		return nil, fmt.Errorf("writing public key: %w", err)
	}

	return &KeygenResult{NBits: opts.NBits, OutFile: opts.OutFile, PubFile: pubFile, WroteToOut: true}, nil
}
