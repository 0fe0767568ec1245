package operations

import (
	"fmt"
	"math/big"

	"textbookrsa/src/filefmt"
	"textbookrsa/src/rsa"
)

// ProgressCallback reports how many of total blocks have been crypted so
// far, mirroring the teacher's puzzle-solving progress callback shape.
type ProgressCallback func(done, total uint64)

// EncryptOptions contains the parameters needed to encrypt a file.
type EncryptOptions struct {
	KeyFile    string
	InputFile  string
	OutputFile string
	Progress   ProgressCallback // optional
}

// EncryptResult describes what EncryptFile produced.
type EncryptResult struct {
	InputFile     string
	OutputFile    string
	PlaintextSize int
	NumBlocks     int
}

// EncryptFile loads a key (public or the public view of a private key),
// encodes the input file's bytes against its modulus, encrypts every
// block, and writes a (public_key, ciphertext_message) package to
// opts.OutputFile.
func EncryptFile(opts EncryptOptions) (*EncryptResult, error) {
	kf, err := loadKeyFile(opts.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("loading key: %w", err)
	}
	key := kf.Key()
	pub := key.AsPublic()

	plaintext, err := readPlaintext(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	msg, err := rsa.Encode(plaintext, pub.N)
	if err != nil {
		return nil, fmt.Errorf("encoding plaintext: %w", err)
	}

	// Crypt block-by-block (rather than calling the Encrypt façade's single
	// Map in one shot) purely so progress can be reported as it happens; the
	// output file is only written once every block succeeds, preserving the
	// façade's all-or-nothing contract.
	total := uint64(len(msg.Numbers))
	cipherNumbers := make([]*big.Int, 0, len(msg.Numbers))
	for i, n := range msg.Numbers {
		c, err := pub.EncryptInt(n)
		if err != nil {
			return nil, fmt.Errorf("encrypting block %d: %w", i, err)
		}
		cipherNumbers = append(cipherNumbers, c)
		if opts.Progress != nil {
			opts.Progress(uint64(i+1), total)
		}
	}
	cipher := rsa.Message{Numbers: cipherNumbers, Modulus: msg.Modulus, Overflow: msg.Overflow}

	cp := filefmt.FromCiphertext(pub, cipher)
	if err := writeCipherPackage(opts.OutputFile, cp); err != nil {
		return nil, fmt.Errorf("writing ciphertext package: %w", err)
	}

	return &EncryptResult{
		InputFile:     opts.InputFile,
		OutputFile:    opts.OutputFile,
		PlaintextSize: len(plaintext),
		NumBlocks:     len(cipher.Numbers),
	}, nil
}
