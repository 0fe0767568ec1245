package operations

import (
	"fmt"

	"textbookrsa/src/filefmt"
	"textbookrsa/src/rsa"
)

// PublicExtractOptions contains the parameters needed to extract a public
// key from a key file.
type PublicExtractOptions struct {
	InputFile  string
	OutputFile string
}

// PublicExtractResult describes what PublicExtractFile produced.
type PublicExtractResult struct {
	InputFile  string
	OutputFile string
}

// PublicExtractFile loads any key file; if it holds a private key, derives
// and writes its public view to opts.OutputFile. If the input is already a
// public key, it diagnoses and aborts rather than silently copying the
// file, since there is nothing to derive.
func PublicExtractFile(opts PublicExtractOptions) (*PublicExtractResult, error) {
	kf, err := loadKeyFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("loading key: %w", err)
	}
	key := kf.Key()
	if !kf.IsPrivate() {
		return nil, fmt.Errorf("%w: input is already a public key", rsa.ErrKeyLacksCapability)
	}

	pubKF := filefmt.FromKey(rsa.FromPublic(key.AsPublic()))
	if err := writeKeyFile(opts.OutputFile, pubKF); err != nil {
		return nil, fmt.Errorf("writing public key: %w", err)
	}

	return &PublicExtractResult{InputFile: opts.InputFile, OutputFile: opts.OutputFile}, nil
}
