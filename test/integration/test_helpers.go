// Package integration exercises the full keygen/encrypt/decrypt/
// publicextract pipeline through the operations package, the same layer
// cmd's subcommands call into, rather than through the number-theoretic
// packages directly. Adapted from the teacher's test/integration suite
// (same fixture/tempfile helper shape), trimmed to the fixtures and
// constants this domain's CLI actually exercises.
package integration

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// testNBits is a small-but-codec-capable bit length so keygen in these
// tests runs fast while staying above the MinCLIKeyBits floor.
const testNBits = 64

// TestFixture represents a test data fixture.
type TestFixture struct {
	Name string
	Data []byte
}

// createTestFixtures generates various test data patterns.
func createTestFixtures() []TestFixture {
	return []TestFixture{
		{Name: "empty", Data: []byte{}},
		{Name: "small_text", Data: []byte("Hello, World! This is a test message.")},
		{Name: "binary_data", Data: []byte{0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD, 0xAA, 0x55}},
		{Name: "unicode_text", Data: []byte("Hello 世界! Testing Unicode: αβγδε ñáéíóú")},
		{Name: "large_text", Data: bytes.Repeat([]byte("Lorem ipsum dolor sit amet. "), 500)},
		{Name: "random_binary", Data: generateRandomData(2048)},
		{Name: "all_zeros", Data: make([]byte, 512)},
		{Name: "all_ones", Data: bytes.Repeat([]byte{0xFF}, 512)},
	}
}

func generateRandomData(size int) []byte {
	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		panic(fmt.Sprintf("failed to generate random data: %v", err))
	}
	return data
}

func createTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create temp file %s: %v", path, err)
	}
	return path
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("expected file %s to exist, but it doesn't", path)
	}
}
