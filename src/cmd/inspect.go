package cmd

import (
	"fmt"
	"os"

	"textbookrsa/src/operations"
)

// InspectCommand handles the inspect subcommand: inspect FILE
//
// Recovered from the teacher's check command (inspect an on-disk
// container and show its metadata), generalized to this system's two
// container kinds — key file and ciphertext package — and stripped of the
// decorative box-drawing and emoji the original used.
func InspectCommand(args []string) error {
	if len(args) != 1 {
		inspectUsage()
		return fmt.Errorf("inspect requires exactly 1 argument, got %d", len(args))
	}

	result, err := operations.InspectFile(operations.InspectOptions{InputFile: args[0]})
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", args[0], err)
	}

	fmt.Printf("File:       %s (%d bytes)\n", result.InputFile, result.TotalFileSize)
	if result.IsKeyFile {
		kind := "public"
		if result.IsPrivate {
			kind = "private"
		}
		fmt.Printf("Kind:       key file (%s)\n", kind)
		fmt.Printf("Modulus:    %d bits\n", result.ModulusBits)
		return nil
	}

	fmt.Printf("Kind:       ciphertext package\n")
	fmt.Printf("Modulus:    %d bits\n", result.ModulusBits)
	fmt.Printf("Blocks:     %d\n", result.NumBlocks)
	return nil
}

func inspectUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s inspect FILE\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nShow metadata for a key file or ciphertext package.\n")
}
