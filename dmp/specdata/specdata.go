// Package specdata bundles the documents published with each revision of
// the RDA DMP Common Standard: the JSON Schema files and the official
// examples. Assets are addressed by their path relative to this package,
// e.g. "examples/1.1/ex1-minimal.json".
package specdata

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed examples schemas
var bucket embed.FS

// Asset returns the contents of a bundled file.
func Asset(name string) ([]byte, error) {
	return bucket.ReadFile(name)
}

// MustAsset returns the contents of a bundled file, panicking when it is
// not there. Meant for fixtures and tests.
func MustAsset(name string) []byte {
	blob, err := Asset(name)
	if err != nil {
		panic("specdata: " + err.Error())
	}
	return blob
}

// AssetNames returns the sorted paths of every bundled file.
func AssetNames() []string {
	var names []string
	_ = fs.WalkDir(bucket, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, path)
		}
		return nil
	})
	sort.Strings(names)
	return names
}
