package main

import (
	"fmt"
	"os"

	"textbookrsa/src/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "keygen":
		err = cmd.KeygenCommand(args)
	case "encrypt":
		err = cmd.EncryptCommand(args)
	case "decrypt":
		err = cmd.DecryptCommand(args)
	case "publicextract":
		err = cmd.PublicExtractCommand(args)
	case "inspect":
		err = cmd.InspectCommand(args)
	case "benchmark":
		err = cmd.BenchmarkCommand(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("textbookrsa - a didactic RSA cryptosystem\n\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("  %s <command> [arguments]\n\n", os.Args[0])
	fmt.Printf("Commands:\n")
	fmt.Printf("  keygen NBITS OUTFILE             Generate a private key\n")
	fmt.Printf("  encrypt KEYFILE INFILE OUTFILE    Encrypt a file\n")
	fmt.Printf("  decrypt KEYFILE INFILE OUTFILE    Decrypt a file\n")
	fmt.Printf("  publicextract INFILE OUTFILE      Derive a public key from a private one\n")
	fmt.Printf("  inspect FILE                      Show metadata for a key file or ciphertext\n")
	fmt.Printf("  benchmark                         Benchmark ModExp throughput\n")
	fmt.Printf("  help                              Show this help message\n\n")
	fmt.Printf("Examples:\n")
	fmt.Printf("  %s keygen 512 alice.key\n", os.Args[0])
	fmt.Printf("  %s encrypt alice.key.pub document.txt document.enc\n", os.Args[0])
	fmt.Printf("  %s decrypt alice.key document.enc document.txt\n", os.Args[0])
	fmt.Printf("  %s publicextract alice.key alice.key.pub\n", os.Args[0])
}
