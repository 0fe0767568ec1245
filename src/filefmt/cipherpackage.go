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

// CurrentCipherPackageVersion is the format version written by this
// program's encrypt command.
const CurrentCipherPackageVersion = 1

// cipherPackageMagic plays the same role as keyFileMagic: it lets
// ReadCipherPackage reject a gob stream that happens to decode far enough
// to pass (both containers have N and E) but is actually a KeyFile.
const cipherPackageMagic = "textbookrsa-cipherpackage-v1"

// CipherPackage is the gob-encoded container an encrypt command writes to
// disk. It embeds the public key it was encrypted under (N, E) so a later
// decrypt command can confirm, before doing any arithmetic, that the
// private key it was handed is the matching one rather than producing
// silently-wrong plaintext.
type CipherPackage struct {
	Magic    string
	Version  int
	N        *big.Int
	E        *big.Int
	Numbers  []*big.Int
	Modulus  *big.Int
	Overflow int
}

// FromCiphertext packages a ciphertext Message together with the public
// key it was encrypted under.
func FromCiphertext(pub *rsa.PublicKey, msg rsa.Message) *CipherPackage {
	return &CipherPackage{
		Magic:    cipherPackageMagic,
		Version:  CurrentCipherPackageVersion,
		N:        pub.N,
		E:        pub.E,
		Numbers:  msg.Numbers,
		Modulus:  msg.Modulus,
		Overflow: msg.Overflow,
	}
}

// Message extracts the ciphertext Message from cp.
func (cp *CipherPackage) Message() rsa.Message {
	return rsa.Message{Numbers: cp.Numbers, Modulus: cp.Modulus, Overflow: cp.Overflow}
}

// MatchesPublic reports whether cp was encrypted under pub.
func (cp *CipherPackage) MatchesPublic(pub *rsa.PublicKey) bool {
	return cp.N.Cmp(pub.N) == 0 && cp.E.Cmp(pub.E) == 0
}

// WriteCipherPackage gob-encodes cp to filename.
func WriteCipherPackage(filename string, cp *CipherPackage) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cp); err != nil {
		return fmt.Errorf("encoding cipher package: %w", err)
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}

// WriteCipherPackageTo gob-encodes cp directly to w, for callers (the
// encrypt CLI's "-" stdout mode) that want the bytes streamed rather than
// written to a named file.
func WriteCipherPackageTo(w io.Writer, cp *CipherPackage) error {
	if err := gob.NewEncoder(w).Encode(cp); err != nil {
		return fmt.Errorf("encoding cipher package: %w", err)
	}
	return nil
}

// ReadCipherPackage reads and decodes a CipherPackage from filename.
func ReadCipherPackage(filename string) (*CipherPackage, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rsa.ErrKeyLoadError, err)
	}
	return ReadCipherPackageFrom(bytes.NewReader(data))
}

// ReadCipherPackageFrom decodes a CipherPackage from r, for callers (the
// decrypt CLI's "-" stdin convention) that want to read the gob stream
// directly rather than from a named file.
func ReadCipherPackageFrom(r io.Reader) (*CipherPackage, error) {
	var cp CipherPackage
	if err := gob.NewDecoder(r).Decode(&cp); err != nil {
		return nil, fmt.Errorf("%w: %v", rsa.ErrKeyLoadError, err)
	}
	if cp.Magic != cipherPackageMagic || cp.N == nil || cp.E == nil {
		return nil, fmt.Errorf("%w: not a ciphertext package", rsa.ErrKeyLoadError)
	}
	return &cp, nil
}
