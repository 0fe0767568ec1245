// Package filefmt defines the on-disk containers this program reads and
// writes: key files and ciphertext packages. Where the time-lock puzzle
// tool this package is descended from hand-rolled a versioned
// binary.Write/binary.Read layout over fixed-size byte arrays, a textbook
// RSA key or ciphertext has no fixed-size fields at all — N, E, D, and
// every message block are arbitrary-precision integers of a caller-chosen
// bit length. encoding/gob is used instead: it self-describes field types
// and lengths, which a hand-rolled fixed-width header cannot do for a
// variable-bit-length value without inventing its own length-prefixing
// scheme on top. math/big.Int already implements GobEncode/GobDecode, so
// every container here is gob-native with no manual byte packing.
package filefmt

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"math/big"
	"os"

	"textbookrsa/src/rsa"
)

// CurrentKeyFileVersion is the format version written by this program.
// A future incompatible layout bumps this and ReadKeyFile switches on it,
// the same way the puzzle tool's EncryptedFile.Version gates its legacy
// fields.
const CurrentKeyFileVersion = 1

// keyFileMagic tags the gob stream so ReadKeyFile can tell a key file
// apart from a CipherPackage without relying on which fields happen to be
// present — gob decodes the fields it recognizes and silently zeroes the
// rest, so two structs sharing field names (here, both have N and E)
// would otherwise decode into each other without error.
const keyFileMagic = "textbookrsa-keyfile-v1"

// KeyFile is the gob-encoded container a keygen/publicextract command
// writes to disk. D, P, Q, and Phi are nil for a public-only file.
type KeyFile struct {
	Magic   string
	Version int
	N       *big.Int
	E       *big.Int
	D       *big.Int
	P       *big.Int
	Q       *big.Int
	Phi     *big.Int
}

// IsPrivate reports whether kf carries the private fields.
func (kf *KeyFile) IsPrivate() bool {
	return kf.D != nil
}

// FromKey flattens a rsa.Key into its on-disk representation.
func FromKey(k rsa.Key) *KeyFile {
	if k.Kind == rsa.KeyKindPrivate {
		priv := k.Private
		return &KeyFile{
			Magic: keyFileMagic, Version: CurrentKeyFileVersion,
			N: priv.N, E: priv.E, D: priv.D,
			P: priv.P, Q: priv.Q, Phi: priv.Phi,
		}
	}
	pub := k.Public
	return &KeyFile{Magic: keyFileMagic, Version: CurrentKeyFileVersion, N: pub.N, E: pub.E}
}

// Key reconstructs the rsa.Key this file describes.
func (kf *KeyFile) Key() rsa.Key {
	if kf.IsPrivate() {
		return rsa.FromPrivate(&rsa.PrivateKey{N: kf.N, E: kf.E, D: kf.D, P: kf.P, Q: kf.Q, Phi: kf.Phi})
	}
	return rsa.FromPublic(&rsa.PublicKey{N: kf.N, E: kf.E})
}

// WriteKeyFile gob-encodes kf to filename.
func WriteKeyFile(filename string, kf *KeyFile) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(kf); err != nil {
		return fmt.Errorf("encoding key file: %w", err)
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}

// WriteKeyFileTo gob-encodes kf directly to w, for callers (the keygen
// CLI's "-" stdout mode) that want the bytes streamed rather than written
// to a named file.
func WriteKeyFileTo(w io.Writer, kf *KeyFile) error {
	if err := gob.NewEncoder(w).Encode(kf); err != nil {
		return fmt.Errorf("encoding key file: %w", err)
	}
	return nil
}

// ReadKeyFile reads and decodes a KeyFile from filename.
func ReadKeyFile(filename string) (*KeyFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rsa.ErrKeyLoadError, err)
	}
	return ReadKeyFileFrom(bytes.NewReader(data))
}

// ReadKeyFileFrom decodes a KeyFile from r, for callers (the CLI's "-"
// stdin convention) that want to read the gob stream directly rather than
// from a named file.
func ReadKeyFileFrom(r io.Reader) (*KeyFile, error) {
	var kf KeyFile
	if err := gob.NewDecoder(r).Decode(&kf); err != nil {
		return nil, fmt.Errorf("%w: %v", rsa.ErrKeyLoadError, err)
	}
	if kf.Magic != keyFileMagic || kf.N == nil || kf.E == nil {
		return nil, fmt.Errorf("%w: not a key file", rsa.ErrKeyLoadError)
	}
	return &kf, nil
}
