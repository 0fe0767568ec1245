package cmd

import (
	"fmt"
	"os"

	"textbookrsa/src/operations"
)

// PublicExtractCommand handles the publicextract subcommand:
// publicextract INFILE OUTFILE
func PublicExtractCommand(args []string) error {
	if len(args) != 2 {
		publicExtractUsage()
		return fmt.Errorf("publicextract requires exactly 2 arguments, got %d", len(args))
	}
	inFile, outFile := args[0], args[1]

	// When outFile is "-", the public key itself goes to stdout; narration
	// has to move to stderr or it would corrupt the stream.
	narrating := narrator(outFile == stdinStdoutName)

	narrating("Loading key: %s\n", inFile)

	result, err := operations.PublicExtractFile(operations.PublicExtractOptions{
		InputFile:  inFile,
		OutputFile: outFile,
	})
	if err != nil {
		return fmt.Errorf("failed to extract public key: %w", err)
	}

	narrating("Wrote public key: %s\n", result.OutputFile)
	return nil
}

func publicExtractUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s publicextract INFILE OUTFILE\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nDerive the public view of the private key in INFILE and write it to\n")
	fmt.Fprintf(os.Stderr, "OUTFILE. Aborts if INFILE already holds a public key.\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  %s publicextract alice.key alice.key.pub\n", os.Args[0])
}
