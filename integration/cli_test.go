package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rda-dmp-common/madmp/app"
	"github.com/rda-dmp-common/madmp/dmp"
	"github.com/rda-dmp-common/madmp/internal/testutil"
)

// runCommand executes the madmp CLI in-process and returns its standard
// output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := app.RootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestVersionsCommand(t *testing.T) {
	out, err := runCommand(t, "versions")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1.0\n") {
		t.Errorf("output does not list 1.0: %q", out)
	}
	if !strings.Contains(out, "1.1 (default)") {
		t.Errorf("output does not mark the default: %q", out)
	}
}

func TestVersionsCommandEnvOverride(t *testing.T) {
	t.Setenv("MADMP_VALIDATOR.DEFAULT_VERSION", "1.0")

	out, err := runCommand(t, "versions")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1.0 (default)") {
		t.Errorf("output does not mark 1.0 as the default: %q", out)
	}
}

func TestNewCommand(t *testing.T) {
	for version, flags := range map[string][]string{
		"1.1": {"new"},
		"1.0": {"new", "-s", "1.0"},
	} {
		out, err := runCommand(t, flags...)
		if err != nil {
			t.Fatal(err)
		}

		bundle, err := dmp.Select(version)
		if err != nil {
			t.Fatal(err)
		}
		doc, err := bundle.Parse([]byte(out))
		if err != nil {
			t.Fatalf("skeleton does not parse under %s: %v", version, err)
		}
		if _, err := bundle.Validate(doc); err != nil {
			t.Errorf("skeleton does not validate under %s: %v", version, err)
		}
	}
}

func TestValidateCommand(t *testing.T) {
	location := testutil.TempDocument(t, "examples/1.1/ex1-minimal.json")

	out, err := runCommand(t, "validate", "-f", location)
	if err != nil {
		t.Fatal(err)
	}
	if want := "The document is valid under schema version 1.1."; !strings.Contains(out, want) {
		t.Errorf("expected output %q not found in output: %q", want, out)
	}
}

func TestValidateCommandVersionFlag(t *testing.T) {
	location := testutil.TempDocument(t, "examples/1.0/ex2-funded-project.json")

	out, err := runCommand(t, "validate", "-f", location, "-s", "1.0")
	if err != nil {
		t.Fatal(err)
	}
	if want := "The document is valid under schema version 1.0."; !strings.Contains(out, want) {
		t.Errorf("expected output %q not found in output: %q", want, out)
	}
}

func TestValidateCommandViolations(t *testing.T) {
	location := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(location, []byte(`{"dmp": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "validate", "-f", location, "-s", "1.1")
	if err == nil {
		t.Fatal("error expected")
	}
	if want := "The document is invalid!"; !strings.Contains(out, want) {
		t.Errorf("expected output %q not found in output: %q", want, out)
	}
	if want := "required at title"; !strings.Contains(out, want) {
		t.Errorf("expected violation %q not found in output: %q", want, out)
	}
}

func TestExportDCATCommand(t *testing.T) {
	location := testutil.TempDocument(t, "examples/1.1/ex10-fairsharing.json")

	out, err := runCommand(t, "export-dcat", "-f", location, "-s", "1.1", "-d", "0")
	if err != nil {
		t.Fatal(err)
	}

	graph := map[string]interface{}{}
	if err := json.Unmarshal([]byte(out), &graph); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if have, want := graph["@id"], "https://doi.org/10.25504/FAIRsharing.r3vtvx"; have != want {
		t.Errorf("@id: have %v, want %v", have, want)
	}
}
