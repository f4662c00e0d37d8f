package specdata

import "testing"

func TestPackage(t *testing.T) {
	names := AssetNames()
	if len(names) == 0 {
		t.Fatal("no assets bundled")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := Asset(name)
			if err != nil {
				t.Error(err)
			}
		})
	}
}

func TestMustAssetUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	MustAsset("examples/9.9/missing.json")
}
