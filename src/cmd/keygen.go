package cmd

import (
	"fmt"
	"os"

	"textbookrsa/src/bignum"
	"textbookrsa/src/operations"
)

// KeygenCommand handles the keygen subcommand: keygen NBITS OUTFILE
func KeygenCommand(args []string) error {
	if len(args) != 2 {
		keygenUsage()
		return fmt.Errorf("keygen requires exactly 2 arguments, got %d", len(args))
	}

	nbits, err := parsePositiveInt(args[0], "nbits")
	if err != nil {
		keygenUsage()
		return err
	}
	outFile := args[1]

	// When outFile is "-", the private key itself goes to stdout;
	// narration has to move to stderr or it would corrupt the stream.
	narrating := narrator(outFile == stdinStdoutName)

	narrating("Generating a %d-bit private key...\n", nbits)
	result, err := operations.KeygenFile(operations.KeygenOptions{
		NBits:      nbits,
		OutFile:    outFile,
		RandSource: bignum.CryptoRandSource,
	})
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	if result.OutFile == stdinStdoutName {
		narrating("Wrote private key to stdout (no .pub sibling written)\n")
		return nil
	}

	narrating("Wrote private key: %s\n", result.OutFile)
	narrating("Wrote public key: %s\n", result.PubFile)
	return nil
}

func keygenUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s keygen NBITS OUTFILE\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nGenerate a private key of the requested bit length.\n")
	fmt.Fprintf(os.Stderr, "Writes the private key to OUTFILE and the public key to OUTFILE.pub.\n")
	fmt.Fprintf(os.Stderr, "OUTFILE of \"-\" writes the private key to stdout only; no .pub is written.\n")
	fmt.Fprintf(os.Stderr, "NBITS must be at least %d.\n\n", operations.MinCLIKeyBits)
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  %s keygen 512 alice.key\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s keygen 512 -\n", os.Args[0])
}
