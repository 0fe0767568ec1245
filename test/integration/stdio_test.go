package integration

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"textbookrsa/src/bignum"
	"textbookrsa/src/operations"
)

// TestEncryptWithStdinInput covers the "-" stdin convention for encrypt's
// InputFile argument (spec: "any filename of - denotes the standard input
// or output as appropriate" — not just keygen's outfile case).
func TestEncryptWithStdinInput(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	kr, err := operations.KeygenFile(operations.KeygenOptions{
		NBits: testNBits, OutFile: keyFile, RandSource: bignum.SeededSource(34),
	})
	require.NoError(t, err)

	plaintext := []byte("fed through stdin")
	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = origStdin }()

	go func() {
		w.Write(plaintext)
		w.Close()
	}()

	cipherFile := filepath.Join(dir, "cipher")
	encResult, err := operations.EncryptFile(operations.EncryptOptions{
		KeyFile:    kr.PubFile,
		InputFile:  "-",
		OutputFile: cipherFile,
	})
	os.Stdin = origStdin
	require.NoError(t, err)
	require.Equal(t, len(plaintext), encResult.PlaintextSize)

	outFile := filepath.Join(dir, "out.txt")
	decResult, err := operations.DecryptFile(operations.DecryptOptions{
		KeyFile:    kr.OutFile,
		InputFile:  cipherFile,
		OutputFile: outFile,
	})
	require.NoError(t, err)
	require.Equal(t, len(plaintext), decResult.PlaintextSize)

	got, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

// TestDecryptWithStdoutOutput covers the same convention for decrypt's
// OutputFile argument.
func TestDecryptWithStdoutOutput(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	kr, err := operations.KeygenFile(operations.KeygenOptions{
		NBits: testNBits, OutFile: keyFile, RandSource: bignum.SeededSource(34),
	})
	require.NoError(t, err)

	plaintext := []byte("printed to stdout")
	inputFile := createTempFile(t, "input.txt", plaintext)
	cipherFile := filepath.Join(dir, "cipher")
	_, err = operations.EncryptFile(operations.EncryptOptions{
		KeyFile:    kr.PubFile,
		InputFile:  inputFile,
		OutputFile: cipherFile,
	})
	require.NoError(t, err)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	captured := make(chan []byte, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		captured <- buf
	}()

	_, err = operations.DecryptFile(operations.DecryptOptions{
		KeyFile:    kr.OutFile,
		InputFile:  cipherFile,
		OutputFile: "-",
	})
	w.Close()
	os.Stdout = origStdout
	require.NoError(t, err)

	require.Equal(t, plaintext, <-captured)
}

// TestPublicExtractWithStdinAndStdout covers publicextract's InFile/OutFile
// arguments both honoring "-".
func TestPublicExtractWithStdinAndStdout(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	kr, err := operations.KeygenFile(operations.KeygenOptions{
		NBits: testNBits, OutFile: keyFile, RandSource: bignum.SeededSource(34),
	})
	require.NoError(t, err)

	privBytes, err := os.ReadFile(kr.OutFile)
	require.NoError(t, err)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = origStdin }()
	go func() {
		w.Write(privBytes)
		w.Close()
	}()

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	origStdout := os.Stdout
	os.Stdout = outW
	defer func() { os.Stdout = origStdout }()

	captured := make(chan []byte, 1)
	go func() {
		buf, _ := io.ReadAll(outR)
		captured <- buf
	}()

	_, err = operations.PublicExtractFile(operations.PublicExtractOptions{
		InputFile:  "-",
		OutputFile: "-",
	})
	os.Stdin = origStdin
	outW.Close()
	os.Stdout = origStdout
	require.NoError(t, err)

	want, err := os.ReadFile(kr.PubFile)
	require.NoError(t, err)
	require.Equal(t, want, <-captured)
}
