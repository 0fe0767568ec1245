package cmd

import (
	"fmt"
	"os"
	"strconv"
)

// stdinStdoutName is the filename the CLI reserves to mean "standard input
// or output as appropriate," mirroring operations.stdinStdoutName.
const stdinStdoutName = "-"

// parsePositiveInt parses s as a positive int, labeling any error with
// name for the caller's diagnostic.
func parsePositiveInt(s, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return n, nil
}

// narrator returns a Printf-like function for a subcommand's progress
// narration. When toStderr is true (the command's output target is stdout,
// "-"), narration moves to stderr so it doesn't interleave with the binary
// or plaintext bytes a command streams to stdout.
func narrator(toStderr bool) func(format string, a ...any) {
	if toStderr {
		return func(format string, a ...any) { fmt.Fprintf(os.Stderr, format, a...) }
	}
	return func(format string, a ...any) { fmt.Printf(format, a...) }
}
