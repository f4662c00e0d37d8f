package app

import (
	"strings"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	var c Config
	if err := loadConfig(&c); err != nil {
		t.Fatal(err)
	}

	if have, want := c.Logging.Level, "INFO"; have != want {
		t.Errorf("logging.level: have %s, want %s", have, want)
	}
	if have, want := c.Validator.DefaultVersion, "1.1"; have != want {
		t.Errorf("validator.default_version: have %s, want %s", have, want)
	}
	if have, want := c.Validator.SchemaCheck, "warnings"; have != want {
		t.Errorf("validator.schema_check: have %s, want %s", have, want)
	}
	if have, want := c.Server.Listen, ":8383"; have != want {
		t.Errorf("server.listen: have %s, want %s", have, want)
	}
	if c.Fetch.BaseURL == "" || c.Fetch.Dir == "" {
		t.Error("fetch defaults are empty")
	}
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("MADMP_VALIDATOR.DEFAULT_VERSION", "1.0")

	var c Config
	if err := loadConfig(&c); err != nil {
		t.Fatal(err)
	}

	if have, want := c.Validator.DefaultVersion, "1.0"; have != want {
		t.Errorf("validator.default_version: have %s, want %s", have, want)
	}
}

func TestConfigValidate(t *testing.T) {
	var c Config
	if err := loadConfig(&c); err != nil {
		t.Fatal(err)
	}

	c.Validator.DefaultVersion = "2.0"
	if err := c.Validate(); err == nil {
		t.Error("error expected for unknown default version")
	}

	c.Validator.DefaultVersion = "1.1"
	c.Validator.SchemaCheck = "lenient"
	err := c.Validate()
	if err == nil {
		t.Fatal("error expected for unknown schema check mode")
	}
	if !strings.Contains(err.Error(), "lenient") {
		t.Errorf("error does not name the offending mode: %s", err)
	}
}
