package testutil

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/rda-dmp-common/madmp/dmp/specdata"
)

// Fixture returns a document from the embedded specdata bucket, e.g.
// "examples/1.1/ex1-minimal.json".
func Fixture(t *testing.T, name string) []byte {
	t.Helper()

	blob, err := specdata.Asset(name)
	if err != nil {
		t.Fatalf("error loading fixture %s: %v", name, err)
	}

	return blob
}

// TempDocument writes an embedded document to a temporary file and returns
// its location. The file is removed when the test finishes.
func TempDocument(t *testing.T, name string) string {
	t.Helper()

	location := filepath.Join(t.TempDir(), path.Base(name))
	if err := os.WriteFile(location, Fixture(t, name), 0o644); err != nil {
		t.Fatalf("error writing fixture %s: %v", location, err)
	}

	return location
}
