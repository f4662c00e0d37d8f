package app

import (
	"fmt"
	"io"

	"github.com/rda-dmp-common/madmp/dmp"

	"github.com/spf13/cobra"
)

func NewCmdVersions(out io.Writer, config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the supported schema versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doVersions(out, config)
		},
	}
}

func doVersions(out io.Writer, config *Config) error {
	for _, item := range dmp.Versions() {
		if item == config.Validator.DefaultVersion {
			item += " (default)"
		}
		if _, err := fmt.Fprintln(out, item); err != nil {
			return err
		}
	}
	return nil
}
