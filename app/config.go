package app

import (
	"os"
	"strings"

	"github.com/rda-dmp-common/madmp/dmp"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const defaultConfig = `# madmp

################################## LOGGING ####################################

[logging]

#
# Logging verbosity level.
# Supported values: "DEBUG", "INFO", "WARN", "ERROR", "FATAL" or "PANIC".
#
level = "INFO"

################################# VALIDATOR ###################################

[validator]

#
# Schema revision assumed when a command or request does not name one.
# Supported values: "1.0" or "1.1".
#
default_version = "1.1"

#
# The published-schema cross-check supports three modes:
#
#   schema_check="strict"
#   Documents rejected by the published JSON Schema fail validation.
#
#   schema_check="warnings"
#   Cross-check findings are reported but the native engine has the
#   final word.
#
#   schema_check="disabled"
#   The cross-check will not be performed.
#
schema_check = "warnings"

################################## SERVER #####################################

[server]

#
# Address where the HTTP server listens, e.g. "127.0.0.1:8383".
#
listen = ":8383"

################################## FETCH ######################################

[fetch]

#
# Base URL of the canonical examples published with the RDA-DMP Common
# Standard.
#
base_url = "https://raw.githubusercontent.com/RDA-DMP-Common/RDA-DMP-Common-Standard/master/examples/JSON/"

#
# Directory where fetched examples are written.
#
dir = "examples"

################################## AWS ########################################

[aws]

s3_profile = ""
s3_endpoint = ""
`

type Config struct {
	v *viper.Viper

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`

	Validator struct {
		DefaultVersion string `mapstructure:"default_version"`
		SchemaCheck    string `mapstructure:"schema_check"`
	} `mapstructure:"validator"`

	Server struct {
		Listen string `mapstructure:"listen"`
	} `mapstructure:"server"`

	Fetch struct {
		BaseURL string `mapstructure:"base_url"`
		Dir     string `mapstructure:"dir"`
	} `mapstructure:"fetch"`

	AWS struct {
		S3Profile  string `mapstructure:"s3_profile"`
		S3Endpoint string `mapstructure:"s3_endpoint"`
	} `mapstructure:"aws"`
}

func (c Config) Validate() error {
	if _, err := dmp.Select(c.Validator.DefaultVersion); err != nil {
		return err
	}
	switch c.Validator.SchemaCheck {
	case dmp.SchemaCheckStrict, dmp.SchemaCheckWarnings, dmp.SchemaCheckDisabled:
	default:
		return errors.Errorf("unknown schema check mode %q", c.Validator.SchemaCheck)
	}
	return nil
}

func (c Config) String() string {
	tmpfile, err := os.CreateTemp("", "config.*.toml")
	if err != nil {
		return err.Error()
	}
	defer os.Remove(tmpfile.Name())
	err = c.v.WriteConfigAs(tmpfile.Name())
	if err != nil {
		return err.Error()
	}
	blob, err := os.ReadFile(tmpfile.Name())
	if err != nil {
		return err.Error()
	}
	return string(blob)
}

func loadConfig(c *Config) error {
	v := viper.New()

	v.SetEnvPrefix("MADMP")
	v.AutomaticEnv()

	v.SetConfigName("madmp")
	v.SetConfigType("toml")
	v.AddConfigPath("$HOME/.config/")
	v.AddConfigPath("/etc/madmp/")

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read our default configuration.
	if err := v.ReadConfig(strings.NewReader(defaultConfig)); err != nil {
		panic(err) // Not in the user path.
	}

	// Include configuration file provided by the user.
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return errors.Wrap(err, "configuration unmarshaling failed")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "config did not pass validation")
	}

	c.v = v

	return nil
}
