package operations

import (
	"fmt"
	"math/big"

	"textbookrsa/src/rsa"
)

// DecryptOptions contains the parameters needed to decrypt a file.
type DecryptOptions struct {
	KeyFile    string
	InputFile  string
	OutputFile string
	Progress   ProgressCallback // optional
}

// DecryptResult describes what DecryptFile produced.
type DecryptResult struct {
	InputFile     string
	OutputFile    string
	PlaintextSize int
	NumBlocks     int
}

// DecryptFile loads a private key, reads the (embedded_key,
// ciphertext_message) package from opts.InputFile, aborts with a
// diagnostic if the embedded key does not match the loaded key's public
// view, decrypts every block, and writes the decoded bytes to
// opts.OutputFile.
func DecryptFile(opts DecryptOptions) (*DecryptResult, error) {
	kf, err := loadKeyFile(opts.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("loading key: %w", err)
	}
	key := kf.Key()
	if !key.CanDecrypt() {
		return nil, fmt.Errorf("%w: decrypt requires a private key", rsa.ErrKeyLacksCapability)
	}
	priv := key.Private

	cp, err := loadCipherPackage(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("loading ciphertext package: %w", err)
	}
	if !cp.MatchesPublic(priv.Public()) {
		return nil, fmt.Errorf("%w: ciphertext was encrypted under a different key", rsa.ErrWrongKeyForCiphertext)
	}

	cipher := cp.Message()
	total := uint64(len(cipher.Numbers))
	plainNumbers := make([]*big.Int, 0, len(cipher.Numbers))
	for i, c := range cipher.Numbers {
		m, err := priv.DecryptInt(c)
		if err != nil {
			return nil, fmt.Errorf("decrypting block %d: %w", i, err)
		}
		plainNumbers = append(plainNumbers, m)
		if opts.Progress != nil {
			opts.Progress(uint64(i+1), total)
		}
	}
	plaintextMsg := rsa.Message{Numbers: plainNumbers, Modulus: cipher.Modulus, Overflow: cipher.Overflow}

	plaintext, err := plaintextMsg.Decode()
	if err != nil {
		return nil, fmt.Errorf("decoding plaintext: %w", err)
	}

	if err := writePlaintext(opts.OutputFile, plaintext); err != nil {
		return nil, fmt.Errorf("writing output file: %w", err)
	}

	return &DecryptResult{
		InputFile:     opts.InputFile,
		OutputFile:    opts.OutputFile,
		PlaintextSize: len(plaintext),
		NumBlocks:     len(cp.Numbers),
	}, nil
}
