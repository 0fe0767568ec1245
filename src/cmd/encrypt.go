package cmd

import (
	"fmt"
	"os"

	"textbookrsa/src/operations"
	"textbookrsa/src/utils"
)

// minBlocksForProgressBar is the block count at or above which
// encrypt/decrypt show a progress bar; below it the crypt finishes before a bar would be
// worth drawing.
const minBlocksForProgressBar = 64

// EncryptCommand handles the encrypt subcommand: encrypt KEYFILE INFILE OUTFILE
func EncryptCommand(args []string) error {
	if len(args) != 3 {
		encryptUsage()
		return fmt.Errorf("encrypt requires exactly 3 arguments, got %d", len(args))
	}
	keyFile, inFile, outFile := args[0], args[1], args[2]

	// When outFile is "-", the ciphertext package itself goes to stdout;
	// narration has to move to stderr or it would corrupt the stream.
	narrating := narrator(outFile == stdinStdoutName)

	narrating("Loading key: %s\n", keyFile)
	narrating("Reading input file: %s\n", inFile)

	var bar *utils.BlockProgressBar
	result, err := operations.EncryptFile(operations.EncryptOptions{
		KeyFile:    keyFile,
		InputFile:  inFile,
		OutputFile: outFile,
		Progress: func(done, total uint64) {
			if total < minBlocksForProgressBar || outFile == stdinStdoutName {
				return
			}
			if bar == nil {
				bar = utils.NewProgressBar(total)
			}
			if done >= total {
				bar.Finish()
			} else {
				bar.Update(done)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	narrating("Encrypted %d bytes into %d blocks\n", result.PlaintextSize, result.NumBlocks)
	narrating("Wrote ciphertext package: %s\n", result.OutputFile)
	return nil
}

func encryptUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s encrypt KEYFILE INFILE OUTFILE\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nEncrypt INFILE against the key in KEYFILE (public key or the public\n")
	fmt.Fprintf(os.Stderr, "view of a private key), writing a ciphertext package to OUTFILE.\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  %s encrypt alice.key.pub document.txt document.enc\n", os.Args[0])
}
