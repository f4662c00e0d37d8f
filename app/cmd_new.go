package app

import (
	"fmt"
	"io"

	"github.com/rda-dmp-common/madmp/dmp"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var newVersion string

func NewCmdNew(out io.Writer, config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write a skeleton DMP document ready for hand-editing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doNew(out, config)
		},
	}

	cmd.Flags().StringVarP(&newVersion, "schema", "s", "", "Schema version (defaults to validator.default_version)")

	return cmd
}

func doNew(out io.Writer, config *Config) error {
	version := newVersion
	if version == "" {
		version = config.Validator.DefaultVersion
	}
	bundle, err := dmp.Select(version)
	if err != nil {
		return err
	}
	plan, err := bundle.Validate(bundle.New())
	if err != nil {
		return errors.Wrap(err, "skeleton did not pass validation")
	}
	blob, err := dmp.ToJSON(plan)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(blob))
	return err
}
