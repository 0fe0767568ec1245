package operations

import (
	"fmt"
	"os"

	"textbookrsa/src/filefmt"
)

// InspectOptions contains the parameters needed to inspect a key file or
// ciphertext package.
type InspectOptions struct {
	InputFile string
}

// InspectResult describes the metadata extracted from a key file or
// ciphertext package, generalized from the teacher's "inspect an encrypted
// file" check command to this system's two on-disk container kinds.
type InspectResult struct {
	InputFile     string
	IsKeyFile     bool // false means it parsed as a CipherPackage instead
	IsPrivate     bool // only meaningful when IsKeyFile
	ModulusBits   int
	NumBlocks     int // only meaningful for a CipherPackage
	TotalFileSize int64
}

// InspectFile tries to parse opts.InputFile as a key file, then as a
// ciphertext package, and reports whichever succeeds.
func InspectFile(opts InspectOptions) (*InspectResult, error) {
	info, err := os.Stat(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	if kf, err := filefmt.ReadKeyFile(opts.InputFile); err == nil {
		return &InspectResult{
			InputFile:     opts.InputFile,
			IsKeyFile:     true,
			IsPrivate:     kf.IsPrivate(),
			ModulusBits:   kf.N.BitLen(),
			TotalFileSize: info.Size(),
		}, nil
	}

	cp, err := filefmt.ReadCipherPackage(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("input is neither a key file nor a ciphertext package: %w", err)
	}
	return &InspectResult{
		InputFile:     opts.InputFile,
		IsKeyFile:     false,
		ModulusBits:   cp.N.BitLen(),
		NumBlocks:     len(cp.Numbers),
		TotalFileSize: info.Size(),
	}, nil
}
