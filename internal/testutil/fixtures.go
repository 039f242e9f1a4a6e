package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FixturePath returns the absolute path to a file in the project's "testdata"
// directory. Callers must sit two directories below the project root.
func FixturePath(t *testing.T, fixturePath string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("..", "..", "testdata", fixturePath))
	if err != nil {
		t.Fatalf("Failed to get absolute path to testdata/%s: %v", fixturePath, err)
	}

	return absPath
}

// ReadFixture returns the contents of a file in the "testdata" directory.
func ReadFixture(t *testing.T, fixturePath string) []byte {
	t.Helper()

	data, err := os.ReadFile(FixturePath(t, fixturePath))
	if err != nil {
		t.Fatalf("Failed to read testdata/%s: %v", fixturePath, err)
	}

	return data
}
