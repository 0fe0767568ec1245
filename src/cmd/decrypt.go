package cmd

import (
	"fmt"
	"os"

	"textbookrsa/src/operations"
	"textbookrsa/src/utils"
)

// DecryptCommand handles the decrypt subcommand: decrypt KEYFILE INFILE OUTFILE
func DecryptCommand(args []string) error {
	if len(args) != 3 {
		decryptUsage()
		return fmt.Errorf("decrypt requires exactly 3 arguments, got %d", len(args))
	}
	keyFile, inFile, outFile := args[0], args[1], args[2]

	// When outFile is "-", the recovered plaintext itself goes to stdout;
	// narration has to move to stderr or it would corrupt the stream.
	narrating := narrator(outFile == stdinStdoutName)

	narrating("Loading key: %s\n", keyFile)
	narrating("Reading ciphertext package: %s\n", inFile)

	var bar *utils.BlockProgressBar
	result, err := operations.DecryptFile(operations.DecryptOptions{
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
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	narrating("Decrypted %d blocks into %d bytes\n", result.NumBlocks, result.PlaintextSize)
	narrating("Wrote plaintext: %s\n", result.OutputFile)
	return nil
}

func decryptUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s decrypt KEYFILE INFILE OUTFILE\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nDecrypt INFILE with the private key in KEYFILE, writing the recovered\n")
	fmt.Fprintf(os.Stderr, "plaintext to OUTFILE. Aborts if INFILE was encrypted under a different key.\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  %s decrypt alice.key document.enc document.txt\n", os.Args[0])
}
